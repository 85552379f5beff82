package catalog

import "errors"

type Money struct {
	cents    int64
	currency string
}

const DefaultCurrency = "MUR"

func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{cents: cents, currency: currency}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Currency() string {
	return m.currency
}

type Location struct {
	value string
}

func NewLocation(value string) Location {
	return Location{value: value}
}

func (l Location) String() string {
	return l.value
}

func (l Location) IsEmpty() bool {
	return l.value == ""
}

var ErrEmptyImageRef = errors.New("image reference cannot be empty")

// Images is the ordered gallery of an entry; the first element is the cover.
type Images []string

func NewImages(refs []string) (Images, error) {
	out := make(Images, 0, len(refs))
	for _, ref := range refs {
		if ref == "" {
			return nil, ErrEmptyImageRef
		}
		out = append(out, ref)
	}
	return out, nil
}
