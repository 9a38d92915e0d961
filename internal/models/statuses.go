package models

import "strings"

type RecordStatus string

const (
	StatusNew RecordStatus = "new"

	StatusPending   RecordStatus = "pending"
	StatusApproved  RecordStatus = "approved"
	StatusConfirmed RecordStatus = "confirmed"
	StatusDeclined  RecordStatus = "declined"
)

// IsBookingStatus reports whether s is a valid inspection/consultation status.
func IsBookingStatus(s string) bool {
	switch RecordStatus(s) {
	case StatusPending, StatusApproved, StatusConfirmed, StatusDeclined:
		return true
	}
	return false
}

type PropertyType string

const (
	PropertyTypeSale       PropertyType = "Sale"
	PropertyTypeRent       PropertyType = "Rent"
	PropertyTypeAirbnb     PropertyType = "Airbnb"
	PropertyTypeCommercial PropertyType = "Commercial"
)

var propertyTypes = []PropertyType{PropertyTypeSale, PropertyTypeRent, PropertyTypeAirbnb, PropertyTypeCommercial}

// NormalizePropertyType maps any casing of a known type to its canonical form.
func NormalizePropertyType(s string) (PropertyType, bool) {
	for _, t := range propertyTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, true
		}
	}
	return "", false
}

type RequestType string

const (
	RequestTypeService  RequestType = "service"
	RequestTypePurchase RequestType = "purchase"
)

type MailingCategory string

const (
	MailingCategoryProperty MailingCategory = "property"
	MailingCategoryService  MailingCategory = "service"
)

type MessageSender string

const (
	MessageFromUser  MessageSender = "user"
	MessageFromAdmin MessageSender = "admin"
)
