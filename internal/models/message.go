package models

import "time"

type Message struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Email     string        `json:"email"`
	From      MessageSender `json:"from"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
}
