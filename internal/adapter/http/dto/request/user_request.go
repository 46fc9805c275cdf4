package request

import (
	"strings"

	"elo_drinks/internal/domain/entities"
)

// RegisterUserRequest creates an account. Role defaults to "cliente" when
// omitted; only an authenticated admin may create another admin.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (r RegisterUserRequest) ResolveRole() entities.UserRole {
	return entities.UserRole(strings.TrimSpace(strings.ToLower(r.Role)))
}

// TokenRequest carries form-encoded credentials, OAuth2 password-grant style.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ActiveRequest toggles an account. A pointer keeps "active": false bindable.
type ActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
