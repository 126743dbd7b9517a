package dto

import (
	"github.com/SscSPs/correspondence_app/internal/core/domain"
)

// UserResponse is a directory entry as returned to clients.
type UserResponse struct {
	UserID string          `json:"userID"`
	Name   string          `json:"name"`
	Role   domain.UserRole `json:"role"`
	UnitID string          `json:"unitID"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// UnitResponse is an organisational unit with its composed numbering code.
type UnitResponse struct {
	UnitID   string  `json:"unitID"`
	Code     string  `json:"code"`
	FullCode string  `json:"fullCode"` // parent.child for branches
	Name     string  `json:"name"`
	ParentID *string `json:"parentID,omitempty"`
}

// ToUserResponse converts a domain.User to its DTO.
func ToUserResponse(user domain.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Role:   user.Role,
		UnitID: user.UnitID,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
