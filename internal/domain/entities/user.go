package entities

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCliente UserRole = "cliente"
)

// User is a storefront or back-office account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
