package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	"gopkg.in/yaml.v3"
)

// Seed is the directory content loaded at boot: users, units and archive classifications.
type Seed struct {
	Units []struct {
		ID       string `yaml:"id"`
		Code     string `yaml:"code"`
		Name     string `yaml:"name"`
		ParentID string `yaml:"parentID"`
	} `yaml:"units"`
	Users []struct {
		ID     string `yaml:"id"`
		Name   string `yaml:"name"`
		Role   string `yaml:"role"`
		UnitID string `yaml:"unitID"`
	} `yaml:"users"`
	Classifications []struct {
		ID   string `yaml:"id"`
		Code string `yaml:"code"`
		Name string `yaml:"name"`
	} `yaml:"classifications"`
}

// LoadSeed reads a seed file.
func LoadSeed(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &seed, nil
}

// DomainUnits converts the seeded units.
func (s *Seed) DomainUnits() []domain.Unit {
	out := make([]domain.Unit, 0, len(s.Units))
	for _, u := range s.Units {
		unit := domain.Unit{UnitID: u.ID, Code: u.Code, Name: u.Name}
		if u.ParentID != "" {
			parent := u.ParentID
			unit.ParentID = &parent
		}
		out = append(out, unit)
	}
	return out
}

// DomainUsers converts the seeded users. Users without a role are staff.
func (s *Seed) DomainUsers() []domain.User {
	out := make([]domain.User, 0, len(s.Users))
	for _, u := range s.Users {
		role := domain.UserRole(u.Role)
		if role == "" {
			role = domain.RoleStaff
		}
		out = append(out, domain.User{UserID: u.ID, Name: u.Name, Role: role, UnitID: u.UnitID})
	}
	return out
}

// DomainClassifications converts the seeded classifications.
func (s *Seed) DomainClassifications() []domain.Classification {
	out := make([]domain.Classification, 0, len(s.Classifications))
	for _, c := range s.Classifications {
		out = append(out, domain.Classification{ClassificationID: c.ID, Code: c.Code, Name: c.Name})
	}
	return out
}

// Apply stores the seeded directory. Units and classifications are upserted, existing users are kept.
func (s *Seed) Apply(ctx context.Context, repos portsrepo.RepositoryProvider) error {
	for _, unit := range s.DomainUnits() {
		if err := repos.UnitRepo.SaveUnit(ctx, unit); err != nil {
			return fmt.Errorf("seed unit %s: %w", unit.UnitID, err)
		}
	}
	for _, c := range s.DomainClassifications() {
		if err := repos.ClassificationRepo.SaveClassification(ctx, c); err != nil {
			return fmt.Errorf("seed classification %s: %w", c.ClassificationID, err)
		}
	}
	now := time.Now().UTC()
	for _, user := range s.DomainUsers() {
		user.CreatedAt, user.LastUpdatedAt = now, now
		user.CreatedBy, user.LastUpdatedBy = "seed", "seed"
		if err := repos.UserRepo.SaveUser(ctx, user); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("seed user %s: %w", user.UserID, err)
		}
	}
	return nil
}
