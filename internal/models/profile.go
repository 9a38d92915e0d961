package models

import "time"

// MinimumAge is the lowest age a profile can be saved with.
const MinimumAge = 18

type Interests struct {
	PropertyTypes []string `json:"propertyTypes"`
	ServiceTypes  []string `json:"serviceTypes"`
}

// Profile is stored under profile_<userId>, one per user.
type Profile struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Gender    string    `json:"gender"`
	Age       int       `json:"age"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Interests Interests `json:"interests"`
	UpdatedAt time.Time `json:"updatedAt"`
}
