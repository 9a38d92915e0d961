package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"letify_backend/internal/repositories"
	"letify_backend/pkg/apperrors"
)

func sortNewestFirst[T any](items []T, createdAt func(*T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(&items[i]).After(createdAt(&items[j]))
	})
}

// notFoundOr maps a missing record to notFound and anything else to a 500 with message.
func notFoundOr(err error, notFound *apperrors.AppError, domain, message string) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return notFound
	}
	return apperrors.OperationFailed(err, domain, message)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// excerpt shortens s for notification bodies.
func excerpt(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max]) + "..."
}
