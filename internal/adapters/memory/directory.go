package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
)

// Directory holds users, units and archive classifications.
type Directory struct {
	mu              sync.RWMutex
	users           map[string]domain.User
	units           map[string]domain.Unit
	classifications map[string]domain.Classification
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		users:           make(map[string]domain.User),
		units:           make(map[string]domain.Unit),
		classifications: make(map[string]domain.Classification),
	}
}

var (
	_ portsrepo.UserRepositoryFacade           = (*Directory)(nil)
	_ portsrepo.UnitRepositoryFacade           = (*Directory)(nil)
	_ portsrepo.ClassificationRepositoryFacade = (*Directory)(nil)
)

func (d *Directory) SaveUser(ctx context.Context, user domain.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.users[user.UserID]; exists {
		return fmt.Errorf("%w: user %s", apperrors.ErrDuplicate, user.UserID)
	}
	d.users[user.UserID] = user
	return nil
}

func (d *Directory) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.users[userID]
	if !ok || user.DeletedAt != nil {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return &user, nil
}

func (d *Directory) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	users := make([]domain.User, 0, len(d.users))
	for _, u := range d.users {
		if u.DeletedAt == nil {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	if offset >= len(users) {
		return []domain.User{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(users) {
		end = len(users)
	}
	return users[offset:end], nil
}

func (d *Directory) SaveUnit(ctx context.Context, unit domain.Unit) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.units[unit.UnitID] = unit
	return nil
}

func (d *Directory) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	unit, ok := d.units[unitID]
	if !ok {
		return nil, fmt.Errorf("%w: unit %s", apperrors.ErrNotFound, unitID)
	}
	return &unit, nil
}

func (d *Directory) SaveClassification(ctx context.Context, c domain.Classification) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.classifications[c.ClassificationID] = c
	return nil
}

func (d *Directory) FindClassificationByID(ctx context.Context, classificationID string) (*domain.Classification, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.classifications[classificationID]
	if !ok {
		return nil, fmt.Errorf("%w: classification %s", apperrors.ErrNotFound, classificationID)
	}
	return &c, nil
}
