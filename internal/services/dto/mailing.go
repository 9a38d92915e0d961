package dto

type CreateMailingListRequest struct {
	Name      string   `json:"name" validate:"required"`
	Category  string   `json:"category" validate:"required,is-mailing-category"`
	Interests []string `json:"interests" validate:"required,min=1"`
}

type SendMailingRequest struct {
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}
