package usecase

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-live/internal/domain"
	"github.com/shopspring/decimal"
)

// FlexNumber decodes a JSON number that clients may also send as a quoted
// string (form fields arrive that way). Absent, null, empty and unparseable
// values all coerce to 0, matching the record defaulting rules.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	if s[0] == '"' {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			*n = 0
			return nil
		}

		s = strings.TrimSpace(quoted)
		if s == "" {
			*n = 0
			return nil
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		*n = 0
		return nil
	}

	f, _ := d.Float64()
	*n = FlexNumber(f)

	return nil
}

// SaveProductReq carries the fields of a product create/update payload.
type SaveProductReq struct {
	Title     string     `json:"title"`
	Price     FlexNumber `json:"price"`
	Thumbnail string     `json:"thumbnail"`
}

func NewSaveProductReq(title string, price float64, thumbnail string) *SaveProductReq {
	return &SaveProductReq{
		Title:     title,
		Price:     FlexNumber(price),
		Thumbnail: thumbnail,
	}
}

func (r *SaveProductReq) ToDomain() *domain.Product {
	return domain.NewProduct(r.Title, float64(r.Price), r.Thumbnail)
}

// SaveMessageReq carries the flat payload of a nuevoMensaje event; the author
// sub-record is folded together server-side.
type SaveMessageReq struct {
	Email     string     `json:"email"`
	FirstName string     `json:"nombre"`
	LastName  string     `json:"apellido"`
	Age       FlexNumber `json:"edad"`
	Alias     string     `json:"alias"`
	Avatar    string     `json:"avatar"`
	Date      string     `json:"date"`
	Text      string     `json:"text"`
}

func (r *SaveMessageReq) ToDomain() *domain.Message {
	date := r.Date
	if date == "" {
		date = time.Now().Format(time.RFC3339)
	}

	author := domain.Author{
		ID:        r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Age:       int(r.Age),
		Alias:     r.Alias,
		Avatar:    r.Avatar,
	}

	return domain.NewMessage(author, date, r.Text)
}
