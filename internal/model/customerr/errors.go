package customerr

import (
	"fmt"

	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/month"
)

var (
	ErrInvalidMonth   = month.ErrInvalidKey
	ErrInvalidDate    = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidAmount  = errors.New("amount must be a positive number")
	ErrEmptyName      = errors.New("name must not be empty")
	ErrCategoryExists = errors.New("category already exists")
	ErrUnknownPeriod  = errors.New("unknown report period")
)

// MissingCategoryError rejects an expense that references an unknown category.
type MissingCategoryError struct {
	Name string
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("category '%s' does not exist", e.Name)
}

// IsMissingCategory unwraps err looking for a MissingCategoryError.
func IsMissingCategory(err error) bool {
	var target *MissingCategoryError
	return errors.As(err, &target)
}
