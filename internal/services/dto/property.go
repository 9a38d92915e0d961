package dto

type CreatePropertyRequest struct {
	Title       string   `json:"title" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	Type        string   `json:"type" validate:"required,is-property-type"`
	Description string   `json:"description"`
	Bedrooms    int      `json:"bedrooms" validate:"min=0"`
	Bathrooms   int      `json:"bathrooms" validate:"min=0"`
	Area        string   `json:"area"`
	Images      []string `json:"images"`
	Videos      []string `json:"videos"`
	Features    []string `json:"features"`
}

// UpdatePropertyRequest is a partial update; nil fields keep their stored value.
type UpdatePropertyRequest struct {
	Title       *string   `json:"title"`
	Location    *string   `json:"location"`
	Price       *string   `json:"price"`
	Type        *string   `json:"type" validate:"omitempty,is-property-type"`
	Description *string   `json:"description"`
	Bedrooms    *int      `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms   *int      `json:"bathrooms" validate:"omitempty,min=0"`
	Area        *string   `json:"area"`
	Images      *[]string `json:"images"`
	Videos      *[]string `json:"videos"`
	Features    *[]string `json:"features"`
}

// PropertyFilter comes from the list query string.
type PropertyFilter struct {
	Type     string
	Search   string
	MinPrice *float64
	MaxPrice *float64
}
