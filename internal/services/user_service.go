package services

import (
	"context"
	"sort"

	"letify_backend/internal/auth"
	"letify_backend/pkg/apperrors"
)

type UserService struct {
	directory auth.Directory
}

func NewUserService(directory auth.Directory) *UserService {
	return &UserService{directory: directory}
}

// List returns every user as {id, email}, sorted by email.
func (s *UserService) List(ctx context.Context) ([]auth.Identity, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, apperrors.OperationFailed(err, "user", "Failed to fetch users")
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}
