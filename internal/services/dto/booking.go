package dto

type ReservationRequest struct {
	PropertyID    string `json:"propertyId" validate:"required"`
	PropertyTitle string `json:"propertyTitle"`
	PropertyType  string `json:"propertyType"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	MoveIn        string `json:"moveIn"`
	Guests        int    `json:"guests" validate:"min=0"`
	LeaseTerm     string `json:"leaseTerm"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod"`
}

type InspectionRequest struct {
	PropertyID    string `json:"propertyId" validate:"required"`
	PropertyTitle string `json:"propertyTitle"`
	PropertyType  string `json:"propertyType"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	PreferredDate string `json:"preferredDate" validate:"required"`
	PreferredTime string `json:"preferredTime"`
	Notes         string `json:"notes"`
}

type ConsultationRequest struct {
	PropertyID    string `json:"propertyId"`
	PropertyTitle string `json:"propertyTitle"`
	PropertyType  string `json:"propertyType"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time"`
	Topic         string `json:"topic"`
	Notes         string `json:"notes"`
}

// BookingUpdateRequest merges into a stored inspection or consultation.
type BookingUpdateRequest struct {
	Status        *string `json:"status" validate:"omitempty,is-booking-status"`
	ConfirmedDate *string `json:"confirmedDate"`
	ConfirmedTime *string `json:"confirmedTime"`
}
