package ws

import (
	"context"

	"github.com/DRSN-tech/catalog-live/internal/domain"
	"github.com/DRSN-tech/catalog-live/internal/normalize"
	"github.com/DRSN-tech/catalog-live/internal/usecase"
	"github.com/DRSN-tech/catalog-live/pkg/e"
	"github.com/DRSN-tech/catalog-live/pkg/logger"
)

// Event names shared with the browser client.
const (
	EventProductList = "listaProductos"
	EventNewProduct  = "nuevoProducto"
	EventNewMessage  = "nuevoMensaje"
)

// messagesPayload is what a nuevoMensaje push carries: the normalized view
// plus its display-only compression metric.
type messagesPayload struct {
	Messages           *normalize.View `json:"mensajes"`
	CompressionPercent int             `json:"porcentajeCompresion"`
}

// Coordinator drives the live-update protocol for one session at a time.
// Every push refetches fresh state from the stores; no state is shared
// between sessions. Pushes go to the originating session only, never to the
// whole hub.
type Coordinator struct {
	catalogUC usecase.CatalogUC
	chatUC    usecase.ChatUC
	logger    logger.Logger
}

func NewCoordinator(catalogUC usecase.CatalogUC, chatUC usecase.ChatUC, logger logger.Logger) *Coordinator {
	return &Coordinator{
		catalogUC: catalogUC,
		chatUC:    chatUC,
		logger:    logger,
	}
}

// HandleConnect pushes the current product list and the normalized message
// history to a freshly connected session. Either push failing leaves the
// session alive in a degraded state.
func (c *Coordinator) HandleConnect(ctx context.Context, s Pusher) {
	if err := c.pushProductList(ctx, s); err != nil {
		c.logger.Errorf(err, "session %s: failed to push product list on connect", s.ID())
	}

	if err := c.pushMessages(ctx, s); err != nil {
		c.logger.Errorf(err, "session %s: failed to push messages on connect", s.ID())
	}
}

// HandleNewProduct persists the product and pushes the refreshed list back to
// the originating session, whether or not the persist succeeded.
func (c *Coordinator) HandleNewProduct(ctx context.Context, s Pusher, req *usecase.SaveProductReq) {
	if _, err := c.catalogUC.Create(ctx, req); err != nil {
		c.logger.Errorf(err, "session %s: failed to persist product", s.ID())
	}

	if err := c.pushProductList(ctx, s); err != nil {
		c.logger.Errorf(err, "session %s: failed to push product list", s.ID())
	}
}

// HandleNewMessage persists the message and pushes the refreshed normalized
// history back to the originating session, whether or not the persist
// succeeded.
func (c *Coordinator) HandleNewMessage(ctx context.Context, s Pusher, req *usecase.SaveMessageReq) {
	if _, err := c.chatUC.CreateMessage(ctx, req); err != nil {
		c.logger.Errorf(err, "session %s: failed to persist message", s.ID())
	}

	if err := c.pushMessages(ctx, s); err != nil {
		c.logger.Errorf(err, "session %s: failed to push messages", s.ID())
	}
}

func (c *Coordinator) pushProductList(ctx context.Context, s Pusher) error {
	const op = "Coordinator.pushProductList"

	products, err := c.catalogUC.ListAll(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	if err := s.Push(EventProductList, products); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *Coordinator) pushMessages(ctx context.Context, s Pusher) error {
	const op = "Coordinator.pushMessages"

	messages, err := c.chatUC.ListMessages(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	res, err := normalize.Messages(messages)
	if err != nil {
		return e.Wrap(op, err)
	}

	payload := messagesPayload{
		Messages:           res.View,
		CompressionPercent: res.CompressionPercent,
	}

	if err := s.Push(EventNewMessage, payload); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
