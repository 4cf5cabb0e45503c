package e

import "fmt"

var (
	// 404 Not Found
	ErrNoProducts      = fmt.Errorf("no products in catalog")
	ErrProductNotFound = fmt.Errorf("product not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap annotates err with a message, keeping the chain unwrappable.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
