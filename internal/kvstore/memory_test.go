package kvstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "property_1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "property_1", json.RawMessage(`{"title":"Villa"}`)))
	got, err := s.Get(ctx, "property_1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Villa"}`, string(got))

	require.NoError(t, s.Delete(ctx, "property_1"))
	require.NoError(t, s.Delete(ctx, "property_1"), "deleting a missing key is not an error")
	_, err = s.Get(ctx, "property_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ScanPrefix(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, k := range []string{"inquiry_2", "inquiry_1", "prop_inquiry_1", "notification_u1_1", "admin_notification_1"} {
		require.NoError(t, s.Set(ctx, k, json.RawMessage(`{}`)))
	}

	tests := []struct {
		prefix string
		want   []string
	}{
		{"inquiry_", []string{"inquiry_1", "inquiry_2"}},
		{"prop_inquiry_", []string{"prop_inquiry_1"}},
		{"notification_", []string{"notification_u1_1"}},
		{"admin_notification_", []string{"admin_notification_1"}},
		{"missing_", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			entries, err := s.ScanPrefix(ctx, tt.prefix)
			require.NoError(t, err)
			var keys []string
			for _, e := range entries {
				keys = append(keys, e.Key)
			}
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	raw := json.RawMessage(`{"a":1}`)
	require.NoError(t, s.Set(ctx, "k", raw))
	raw[2] = 'b'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	type doc struct {
		Name string `json:"name"`
	}
	require.NoError(t, SetJSON(ctx, s, "profile_u1", doc{Name: "Ada"}))

	var out doc
	require.NoError(t, GetJSON(ctx, s, "profile_u1", &out))
	assert.Equal(t, "Ada", out.Name)

	assert.ErrorIs(t, GetJSON(ctx, s, "profile_u2", &out), ErrNotFound)
}

func TestEscapes(t *testing.T) {
	assert.Equal(t, `inquiry\_`, escapeLike("inquiry_"))
	assert.Equal(t, `a\*b\?`, escapeGlob("a*b?"))
	assert.Equal(t, []string{"a", "b"}, dedupeSorted([]string{"a", "a", "b"}))
}
