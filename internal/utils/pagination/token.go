package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor is the position after the last item of a page. Letters are listed newest first,
// ties broken by id.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// After reports whether an item at (createdAt, id) comes after the cursor in listing order.
func (c Cursor) After(createdAt time.Time, id string) bool {
	if createdAt.Equal(c.CreatedAt) {
		return id > c.ID
	}
	return createdAt.Before(c.CreatedAt)
}

// EncodeToken creates a base64 encoded token from a creation time and an id.
// This is used for consistent pagination across different repositories.
func EncodeToken(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s", c.CreatedAt.UTC().Format(timeFormat), c.ID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a cursor.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	return Cursor{CreatedAt: createdAt, ID: parts[1]}, nil
}
