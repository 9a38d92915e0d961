package models

import (
	"strconv"
	"strings"
	"time"
)

// Property is a listing. Price and Area are display strings.
type Property struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Location    string       `json:"location"`
	Price       string       `json:"price"`
	Type        PropertyType `json:"type"`
	Description string       `json:"description"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Area        string       `json:"area"`
	Images      []string     `json:"images"`
	Videos      []string     `json:"videos"`
	Features    []string     `json:"features"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// PriceValue strips every non-digit from the display price and parses the rest.
// "₦85,000,000" gives 85000000, "₦3,500,000/yr" gives 3500000. No digits gives 0.
func (p *Property) PriceValue() float64 {
	return ParseDisplayPrice(p.Price)
}

func ParseDisplayPrice(price string) float64 {
	var b strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
