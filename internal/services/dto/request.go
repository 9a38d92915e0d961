package dto

type ServiceRequestRequest struct {
	RequestType  string `json:"requestType" validate:"required,is-request-type"`
	ServiceType  string `json:"serviceType" validate:"required"`
	PropertyType string `json:"propertyType" validate:"required"`
	PropertyID   string `json:"propertyId"`
	Budget       string `json:"budget"`
	Message      string `json:"message" validate:"required"`
}
