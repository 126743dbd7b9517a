package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		CreatedAt: time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "3b1f6c1e-letter",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)

	// Non-UTC times are normalised
	jakarta := time.FixedZone("WIB", 7*60*60)
	local := Cursor{CreatedAt: time.Date(2024, 5, 15, 21, 0, 0, 0, jakarta), ID: "x"}
	decoded, err = DecodeToken(EncodeToken(local))
	require.NoError(t, err)
	assert.True(t, local.CreatedAt.Equal(decoded.CreatedAt))
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	// Base64 encoded date without separator
	_, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.ErrorContains(t, err, "split")

	// Base64 encoded "notadate|abc"
	_, err = DecodeToken("bm90YWRhdGV8YWJj")
	assert.ErrorContains(t, err, "created_at parse")
}

func TestCursor_After(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Cursor{CreatedAt: at, ID: "m"}

	assert.True(t, c.After(at.Add(-time.Second), "a"), "older items come later")
	assert.False(t, c.After(at.Add(time.Second), "z"), "newer items come earlier")
	assert.True(t, c.After(at, "n"))
	assert.False(t, c.After(at, "m"))
	assert.False(t, c.After(at, "a"))
}
