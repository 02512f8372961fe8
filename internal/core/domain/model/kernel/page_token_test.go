package kernel_test

import (
	"encoding/base64"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageToken(t *testing.T) {
	t.Run("should create token from valid OrderID", func(t *testing.T) {
		id := kernel.NewOrderID()

		token, err := kernel.NewPageToken(id)

		require.NoError(t, err)
		assert.False(t, token.IsZero())
		assert.True(t, token.LastOrderID().IsEqual(id))
	})

	t.Run("should return error for zero value OrderID", func(t *testing.T) {
		var id kernel.OrderID

		_, err := kernel.NewPageToken(id)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
	})
}

func TestPageTokenFromString(t *testing.T) {
	t.Run("empty string decodes to zero token", func(t *testing.T) {
		token, err := kernel.PageTokenFromString("")

		require.NoError(t, err)
		assert.True(t, token.IsZero())
		assert.Equal(t, "", token.String())
	})

	t.Run("round trips through String", func(t *testing.T) {
		id, _ := kernel.OrderIDFromString("550e8400-e29b-41d4-a716-446655440000")
		original, err := kernel.NewPageToken(id)
		require.NoError(t, err)

		decoded, err := kernel.PageTokenFromString(original.String())

		require.NoError(t, err)
		assert.False(t, decoded.IsZero())
		assert.True(t, decoded.LastOrderID().IsEqual(id))
		assert.Equal(t, original.String(), decoded.String())
	})

	t.Run("should return error for malformed base64", func(t *testing.T) {
		_, err := kernel.PageTokenFromString("not base64 at all!!!")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error when payload is not an OrderID", func(t *testing.T) {
		garbage := base64.RawURLEncoding.EncodeToString([]byte("not-an-order-id"))

		_, err := kernel.PageTokenFromString(garbage)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPageToken_String(t *testing.T) {
	t.Run("zero token encodes to empty string", func(t *testing.T) {
		var token kernel.PageToken

		assert.True(t, token.IsZero())
		assert.Equal(t, "", token.String())
	})

	t.Run("token is opaque on the wire", func(t *testing.T) {
		id, _ := kernel.OrderIDFromString("550e8400-e29b-41d4-a716-446655440000")
		token, err := kernel.NewPageToken(id)
		require.NoError(t, err)

		// The raw identifier must not leak into the encoded form.
		assert.NotContains(t, token.String(), "550e8400")

		raw, decodeErr := base64.RawURLEncoding.DecodeString(token.String())
		require.NoError(t, decodeErr)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", string(raw))
	})
}
