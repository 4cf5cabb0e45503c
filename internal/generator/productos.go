// Package generator produces synthetic products for the test view.
package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/DRSN-tech/catalog-live/internal/domain"
)

var titles = []string{
	"Carcassonne",
	"Catan",
	"Azul",
	"Ticket to Ride",
	"Dixit",
	"Splendor",
	"Pandemic",
	"Jaipur",
	"Patchwork",
	"Kingdomino",
}

// Get returns one random product. Prices land on whole tens of cents, which
// is how the catalog prices have always looked.
func Get() domain.Product {
	i := rand.IntN(len(titles))

	return domain.Product{
		Title:     titles[i],
		Price:     float64(rand.IntN(99_990)+10) / 10,
		Thumbnail: fmt.Sprintf("https://picsum.photos/seed/%d/120", rand.IntN(1_000)),
	}
}

// List returns n random products.
func List(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, Get())
	}

	return products
}
