package domain

import "time"

// UserRole is the office role of a user. Roles are informational for the engine;
// authority over a letter always comes from being its creator, an approver or a routing target.
type UserRole string

const (
	RoleStaff      UserRole = "STAFF"
	RolePimpinan   UserRole = "PIMPINAN" // Head of unit, usually an approver
	RoleSekretaris UserRole = "SEKRETARIS"
	RoleAdmin      UserRole = "ADMIN"
)

// User represents a user of the application in the domain.
type User struct {
	UserID string   `json:"userID"` // Primary Key (e.g., UUID)
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
	UnitID string   `json:"unitID"` // FK -> units.unit_id
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

// Ref returns the embedded identity stored on letters, steps and routing entries.
func (u User) Ref() UserRef {
	return UserRef{UserID: u.UserID, Name: u.Name}
}

// UserRef is a denormalised user identity embedded in letter child records.
type UserRef struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
}

// IsZero reports whether the reference points at nobody.
func (r UserRef) IsZero() bool {
	return r.UserID == ""
}
