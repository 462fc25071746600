package order

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrEmptyOrder is returned when the submitted item list is absent or empty.
var ErrEmptyOrder = errors.New("order must have at least one item")

// MissingFieldError indicates a submitted item lacks a required attribute.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("item %d: missing %s", e.Index, e.Field)
}

// InvalidQuantityOrPriceError indicates a submitted item has a non-positive
// price or quantity.
type InvalidQuantityOrPriceError struct {
	Index int
	Name  string
}

func (e *InvalidQuantityOrPriceError) Error() string {
	return fmt.Sprintf("item %d (%s): price and quantity must be positive", e.Index, e.Name)
}

// ValidateItems checks raw item inputs and narrows them to LineItems.
// Validation has no side effects; on success the returned items are copies
// of the input, guaranteed to have a non-empty name and positive price and
// quantity, so no downstream re-validation is needed.
func ValidateItems(items []ItemInput) ([]LineItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	validated := make([]LineItem, 0, len(items))
	for i, item := range items {
		switch {
		case item.Name == "":
			return nil, &MissingFieldError{Index: i, Field: "name"}
		case item.UnitPrice == nil:
			return nil, &MissingFieldError{Index: i, Field: "price"}
		case item.Quantity == nil:
			return nil, &MissingFieldError{Index: i, Field: "quantity"}
		}

		if !item.UnitPrice.IsPositive() || *item.Quantity <= 0 {
			return nil, &InvalidQuantityOrPriceError{Index: i, Name: item.Name}
		}

		validated = append(validated, LineItem{
			Name:      item.Name,
			UnitPrice: *item.UnitPrice,
			Quantity:  *item.Quantity,
		})
	}

	return validated, nil
}
