package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCategory = errors.New("category cannot be empty")
	ErrEmptyName     = errors.New("entry name cannot be empty")
	ErrNameTooLong   = errors.New("entry name too long")
	ErrNegativePrice = errors.New("base price cannot be negative")
)

const MaxNameLength = 200

// Category is the literal category string carried by a catalog entry
// ("Luxury Resort", "Catamaran Cruise", ...). The storefront's logical filter
// keys map onto these through the alias table; the literal set grows with the
// catalog, so validation here is shape-only.
type Category string

func NewCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyCategory
	}
	return Category(s), nil
}

func (c Category) String() string {
	return string(c)
}
