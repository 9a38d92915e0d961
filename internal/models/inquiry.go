package models

import "time"

// ContactInquiry comes from the public contact form. Never updated.
type ContactInquiry struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Message   string       `json:"message"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// PropertyInquiry references a property by id; the reference is not checked.
type PropertyInquiry struct {
	ID         string       `json:"id"`
	PropertyID string       `json:"propertyId"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Message    string       `json:"message"`
	Status     RecordStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
}
