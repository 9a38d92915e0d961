package dto

type InterestsPayload struct {
	PropertyTypes []string `json:"propertyTypes"`
	ServiceTypes  []string `json:"serviceTypes"`
}

type ProfileRequest struct {
	FullName  string           `json:"fullName" validate:"required"`
	Gender    string           `json:"gender"`
	Age       *int             `json:"age" validate:"required,adult"`
	Address   string           `json:"address"`
	Phone     string           `json:"phone"`
	Location  string           `json:"location"`
	Interests InterestsPayload `json:"interests"`
}
