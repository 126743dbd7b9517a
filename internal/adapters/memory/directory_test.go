package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/correspondence_app/internal/adapters/memory"
	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	d := memory.NewDirectory()

	require.NoError(t, d.SaveUser(ctx, domain.User{UserID: "b", Name: "Budi"}))
	require.NoError(t, d.SaveUser(ctx, domain.User{UserID: "a", Name: "Ani"}))
	assert.ErrorIs(t, d.SaveUser(ctx, domain.User{UserID: "a"}), apperrors.ErrDuplicate)

	u, err := d.FindUserByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Ani", u.Name)
	_, err = d.FindUserByID(ctx, "zz")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	users, err := d.FindUsers(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Budi", users[0].Name)

	require.NoError(t, d.SaveUnit(ctx, domain.Unit{UnitID: "u1", Code: "A"}))
	unit, err := d.FindUnitByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "A", unit.Code)

	require.NoError(t, d.SaveClassification(ctx, domain.Classification{ClassificationID: "c1", Code: "KU"}))
	c, err := d.FindClassificationByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "KU", c.Code)
	_, err = d.FindClassificationByID(ctx, "c2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
