package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"letify_backend/internal/logger"

	"github.com/sony/gobreaker"
)

const adminUsersPageSize = 1000

// RemoteProvider introspects tokens against a Supabase-compatible auth server:
// GET /auth/v1/user for the caller and GET /auth/v1/admin/users for the directory.
type RemoteProvider struct {
	baseURL    string
	apiKey     string
	serviceKey string
	client     *http.Client
	cb         *gobreaker.CircuitBreaker
}

func NewRemoteProvider(baseURL, apiKey, serviceKey string, timeout time.Duration) *RemoteProvider {
	return &RemoteProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: timeout},
		cb:         newBreaker("identity-provider"),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		Interval:    0,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
		// a rejected token is a healthy answer
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrInvalidToken)
		},
	})
}

type remoteUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (p *RemoteProvider) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	result, err := p.cb.Execute(func() (interface{}, error) {
		var u remoteUser
		if err := p.get(ctx, "/auth/v1/user", token, &u); err != nil {
			return nil, err
		}
		return &u, nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	u := result.(*remoteUser)
	if u.ID == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{ID: u.ID, Email: u.Email}, nil
}

// ListUsers pages through the admin user listing with the service key.
func (p *RemoteProvider) ListUsers(ctx context.Context) ([]Identity, error) {
	if p.serviceKey == "" {
		return nil, fmt.Errorf("%w: service key is not configured", ErrUnavailable)
	}

	users := make([]Identity, 0)
	for page := 1; ; page++ {
		var body struct {
			Users []remoteUser `json:"users"`
		}
		path := fmt.Sprintf("/auth/v1/admin/users?page=%d&per_page=%d", page, adminUsersPageSize)
		_, err := p.cb.Execute(func() (interface{}, error) {
			return nil, p.get(ctx, path, p.serviceKey, &body)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		for _, u := range body.Users {
			users = append(users, Identity{ID: u.ID, Email: u.Email})
		}
		if len(body.Users) < adminUsersPageSize {
			return users, nil
		}
	}
}

func (p *RemoteProvider) get(ctx context.Context, path, bearer string, out interface{}) error {
	u, err := url.Parse(p.baseURL + path)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if p.apiKey != "" {
		req.Header.Set("apikey", p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrInvalidToken
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("identity provider returned %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
