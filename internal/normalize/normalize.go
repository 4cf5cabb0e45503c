// Package normalize restructures a flat message list into an id-keyed entity
// table plus an ordered reference list, the shape pushed to chat clients.
package normalize

import (
	"encoding/json"
	"math"

	"github.com/DRSN-tech/catalog-live/internal/domain"
	"github.com/DRSN-tech/catalog-live/pkg/e"
	"github.com/jimlawless/whereami"
)

// Entities holds the entity tables of the normalized view. Messages keep
// their author inline: only message identity is extracted, authors are not
// deduplicated into a table of their own.
type Entities struct {
	Messages map[string]domain.Message `json:"mensajes"`
}

// View is the normalized form of a message list: the entity table plus the
// ordered sequence of referenced ids. It is derived on every push and never
// persisted.
type View struct {
	Entities Entities `json:"entities"`
	Result   []string `json:"result"`
}

// Result pairs the normalized view with its display-only size metric.
type Result struct {
	View               *View
	CompressionPercent int
}

// Messages normalizes msgs. CompressionPercent compares the serialized sizes
// of the raw list and the view; it goes negative when normalization expands
// small lists, which is expected. An empty input serializes to a non-empty
// JSON array, so the ratio is always defined.
func Messages(msgs []domain.Message) (*Result, error) {
	if msgs == nil {
		msgs = []domain.Message{}
	}

	view := &View{
		Entities: Entities{Messages: make(map[string]domain.Message, len(msgs))},
		Result:   make([]string, 0, len(msgs)),
	}

	for _, msg := range msgs {
		view.Entities.Messages[msg.ID] = msg
		view.Result = append(view.Result, msg.ID)
	}

	rawSize, err := serializedSize(msgs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	normSize, err := serializedSize(view)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	percent := math.Round(float64(rawSize-normSize) / float64(rawSize) * 100)

	return &Result{
		View:               view,
		CompressionPercent: int(percent),
	}, nil
}

func serializedSize(v any) (int, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}

	return len(data), nil
}
