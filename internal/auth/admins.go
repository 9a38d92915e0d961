package auth

import "strings"

// AdminList is the allow-list of admin email addresses.
type AdminList struct {
	emails map[string]struct{}
}

func NewAdminList(emails []string) *AdminList {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if e = normalizeEmail(e); e != "" {
			set[e] = struct{}{}
		}
	}
	return &AdminList{emails: set}
}

// IsAdmin compares case-insensitively.
func (l *AdminList) IsAdmin(email string) bool {
	if l == nil {
		return false
	}
	_, ok := l.emails[normalizeEmail(email)]
	return ok
}

func (l *AdminList) Len() int {
	return len(l.emails)
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
