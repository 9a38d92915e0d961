package models

import "time"

// Reservation collects stay or lease intent. PropertyTitle and PropertyType
// are copied from the property at creation and never refreshed.
type Reservation struct {
	ID            string       `json:"id"`
	PropertyID    string       `json:"propertyId"`
	PropertyTitle string       `json:"propertyTitle"`
	PropertyType  string       `json:"propertyType"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	CheckIn       string       `json:"checkIn"`
	CheckOut      string       `json:"checkOut"`
	MoveIn        string       `json:"moveIn"`
	Guests        int          `json:"guests"`
	LeaseTerm     string       `json:"leaseTerm"`
	Notes         string       `json:"notes"`
	PaymentMethod string       `json:"paymentMethod"`
	Status        RecordStatus `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type InspectionBooking struct {
	ID            string       `json:"id"`
	PropertyID    string       `json:"propertyId"`
	PropertyTitle string       `json:"propertyTitle"`
	PropertyType  string       `json:"propertyType"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	PreferredDate string       `json:"preferredDate"`
	PreferredTime string       `json:"preferredTime"`
	Notes         string       `json:"notes"`
	Status        RecordStatus `json:"status"`
	ConfirmedDate string       `json:"confirmedDate"`
	ConfirmedTime string       `json:"confirmedTime"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// ConsultationRequest is an inspection without a required property.
type ConsultationRequest struct {
	ID            string       `json:"id"`
	PropertyID    string       `json:"propertyId"`
	PropertyTitle string       `json:"propertyTitle"`
	PropertyType  string       `json:"propertyType"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Date          string       `json:"date"`
	Time          string       `json:"time"`
	Topic         string       `json:"topic"`
	Notes         string       `json:"notes"`
	Status        RecordStatus `json:"status"`
	ConfirmedDate string       `json:"confirmedDate"`
	ConfirmedTime string       `json:"confirmedTime"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// ServiceRequest is filed by a signed-in user.
type ServiceRequest struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Email        string       `json:"email"`
	PropertyID   string       `json:"propertyId"`
	RequestType  RequestType  `json:"requestType"`
	ServiceType  string       `json:"serviceType"`
	PropertyType string       `json:"propertyType"`
	Budget       string       `json:"budget"`
	Message      string       `json:"message"`
	Status       RecordStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}
