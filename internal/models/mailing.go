package models

import (
	"strings"
	"time"
)

type MailingList struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  MailingCategory `json:"category"`
	Interests []string        `json:"interests"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Matches reports whether the profile shares at least one interest with the
// list in the list's category. Comparison ignores case and surrounding space.
func (l *MailingList) Matches(p *Profile) bool {
	var values []string
	switch l.Category {
	case MailingCategoryProperty:
		values = p.Interests.PropertyTypes
	case MailingCategoryService:
		values = p.Interests.ServiceTypes
	}

	for _, want := range l.Interests {
		for _, have := range values {
			if strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(have)) {
				return true
			}
		}
	}
	return false
}
