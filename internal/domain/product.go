package domain

// Product is a catalog record. The zero value of every field doubles as its
// documented default, so a product built from a partial payload is always
// fully populated before it reaches the store.
type Product struct {
	ID        string  `json:"_id,omitempty"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
}

func NewProduct(title string, price float64, thumbnail string) *Product {
	return &Product{
		Title:     title,
		Price:     price,
		Thumbnail: thumbnail,
	}
}
