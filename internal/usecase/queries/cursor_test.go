//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"storefront-partners/internal/pkg/errs"
	"storefront-partners/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 30, 0, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"not base64":      "%%%",
		"unknown version": base64.RawURLEncoding.EncodeToString([]byte("v9:1-" + uuid.NewString())),
		"bad timestamp":   base64.RawURLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad id":          base64.RawURLEncoding.EncodeToString([]byte("v1:1-nope")),
	}
	for name, cursor := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
