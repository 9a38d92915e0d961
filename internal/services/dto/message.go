package dto

type UserMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type AdminMessageRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Email   string `json:"email"`
	Content string `json:"content" validate:"required"`
}
