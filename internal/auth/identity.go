// Package auth resolves bearer tokens to identities and decides who is an admin.
package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidToken means the provider looked at the token and rejected it.
	ErrInvalidToken = errors.New("auth: invalid token")
	// ErrUnavailable means the provider could not be asked.
	ErrUnavailable = errors.New("auth: identity provider unavailable")
)

// Identity is the resolved caller.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Provider turns a bearer token into an Identity.
type Provider interface {
	Authenticate(ctx context.Context, token string) (*Identity, error)
}

// Directory lists every known user.
type Directory interface {
	ListUsers(ctx context.Context) ([]Identity, error)
}

// StaticProvider maps fixed tokens to identities.
type StaticProvider struct {
	tokens map[string]Identity
}

func NewStaticProvider(tokens map[string]Identity) *StaticProvider {
	return &StaticProvider{tokens: tokens}
}

func (p *StaticProvider) Authenticate(_ context.Context, token string) (*Identity, error) {
	id, ok := p.tokens[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	return &id, nil
}

func (p *StaticProvider) ListUsers(_ context.Context) ([]Identity, error) {
	users := make([]Identity, 0, len(p.tokens))
	for _, id := range p.tokens {
		users = append(users, id)
	}
	return users, nil
}
