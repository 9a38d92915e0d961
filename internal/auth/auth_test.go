package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminList_IsAdmin(t *testing.T) {
	list := NewAdminList([]string{"Info@LetifyRealty.com", " admin@letifyrealty.com ", ""})

	assert.Equal(t, 2, list.Len())
	assert.True(t, list.IsAdmin("info@letifyrealty.com"))
	assert.True(t, list.IsAdmin("ADMIN@letifyrealty.com"))
	assert.False(t, list.IsAdmin("guest@example.com"))
	assert.False(t, list.IsAdmin(""))

	var nilList *AdminList
	assert.False(t, nilList.IsAdmin("info@letifyrealty.com"))
}

func TestJWTProvider(t *testing.T) {
	p := NewJWTProvider("test-secret")
	ctx := context.Background()

	token, err := p.SignToken(Claims{
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)

	id, err := p.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, &Identity{ID: "user-1", Email: "ada@example.com"}, id)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewJWTProvider("other").SignToken(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "x"}})
		require.NoError(t, err)
		_, err = p.Authenticate(ctx, other)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := p.SignToken(Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}})
		require.NoError(t, err)
		_, err = p.Authenticate(ctx, expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		anon, err := p.SignToken(Claims{Email: "a@b.c"})
		require.NoError(t, err)
		_, err = p.Authenticate(ctx, anon)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := p.Authenticate(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRemoteProvider_Authenticate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		switch r.Header.Get("Authorization") {
		case "Bearer good":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u-1","email":"ada@example.com","role":"authenticated"}`))
		case "Bearer boom":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL+"/", "anon-key", "", time.Second)
	ctx := context.Background()

	id, err := p.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.ID)
	assert.Equal(t, "ada@example.com", id.Email)

	_, err = p.Authenticate(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = p.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = p.Authenticate(ctx, "boom")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRemoteProvider_BreakerIgnoresRejectedTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL, "", "", time.Second)
	for i := 0; i < 5; i++ {
		_, err := p.Authenticate(context.Background(), "bad")
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestRemoteProvider_ListUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"users":[{"id":"u-1","email":"a@example.com"},{"id":"u-2","email":"b@example.com"}]}`))
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL, "anon", "service-key", time.Second)
	users, err := p.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Identity{{ID: "u-1", Email: "a@example.com"}, {ID: "u-2", Email: "b@example.com"}}, users)

	_, err = NewRemoteProvider(srv.URL, "anon", "", time.Second).ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider(map[string]Identity{"tok": {ID: "u-1", Email: "a@example.com"}})
	id, err := p.Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.ID)

	_, err = p.Authenticate(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
