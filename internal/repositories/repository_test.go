package repositories

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"letify_backend/internal/kvstore"
	"letify_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewRepository[models.Property](store, models.PrefixProperty)

	p := &models.Property{ID: "property_1_abc", Title: "Villa"}
	require.NoError(t, repo.Put(ctx, p.ID, p))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Villa", got.Title)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_RejectsForeignKeys(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "inquiry_1", json.RawMessage(`{"id":"inquiry_1"}`)))

	repo := NewRepository[models.Property](store, models.PrefixProperty)
	_, err := repo.Get(ctx, "inquiry_1")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.Error(t, repo.Put(ctx, "inquiry_2", &models.Property{}))
	assert.ErrorIs(t, repo.Delete(ctx, "inquiry_1"), ErrRecordNotFound)
}

func TestRepository_SkipsUndecodable(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "property_bad", json.RawMessage(`"just a string"`)))
	require.NoError(t, store.Set(ctx, "property_good", json.RawMessage(`{"id":"property_good"}`)))

	all, err := NewRepository[models.Property](store, models.PrefixProperty).List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "property_good", all[0].ID)
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewNotificationRepository(store)

	_, err := repo.CreateAdmin(ctx, "New Contact Inquiry", "Ada sent a message")
	require.NoError(t, err)
	_, err = repo.CreateForUser(ctx, "u1", "Request received", "We got it")
	require.NoError(t, err)
	_, err = repo.CreateForUser(ctx, "u2", "Request received", "We got it")
	require.NoError(t, err)

	admin, err := repo.ListAdmin(ctx)
	require.NoError(t, err)
	assert.Len(t, admin, 1)
	assert.Empty(t, admin[0].UserID)

	mine, err := repo.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "u1", mine[0].UserID)

	removed, err := repo.DeleteOlderThan(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Equal(t, 0, store.Len())
}

func TestNotificationRepository_ListForUserIgnoresLongerIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(kvstore.NewMemoryStore())

	_, err := repo.CreateForUser(ctx, "u_1", "New message from Letify Realty", "private")
	require.NoError(t, err)

	mine, err := repo.ListForUser(ctx, "u")
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := repo.ListForUser(ctx, "u_1")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}
