package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidUserInput   = errors.New("invalid user input")
	ErrEmailAlreadyTaken  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
)

const minPasswordLength = 8

// IUserUseCase exposes registration, authentication and the back-office user
// administration.

type IUserUseCase interface {
	Register(ctx context.Context, name, email, phone, password string, role entities.UserRole) (entities.User, error)
	Authenticate(ctx context.Context, email, password string) (token string, expiresIn int64, user entities.User, err error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	SetActive(ctx context.Context, id string, active bool) (entities.User, error)
}

type UserUseCase struct {
	repo   interfaces.IUserRepository
	tokens interfaces.ITokenIssuer
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, tokens interfaces.ITokenIssuer) *UserUseCase {
	return &UserUseCase{repo: repo, tokens: tokens}
}

func (u *UserUseCase) Register(ctx context.Context, name, email, phone, password string, role entities.UserRole) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)

	if name == "" || email == "" || !strings.Contains(email, "@") {
		return entities.User{}, ErrInvalidUserInput
	}
	if len(password) < minPasswordLength {
		return entities.User{}, ErrInvalidUserInput
	}
	if role == "" {
		role = entities.RoleCliente
	}
	if role != entities.RoleAdmin && role != entities.RoleCliente {
		return entities.User{}, ErrInvalidUserInput
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[user][usecase] registered user_id=%s role=%s", created.ID, created.Role)
	return created, nil
}

func (u *UserUseCase) Authenticate(ctx context.Context, email, password string) (string, int64, entities.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", 0, entities.User{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", 0, entities.User{}, err
	}
	if user.ID == "" {
		return "", 0, entities.User{}, ErrInvalidCredentials
	}
	if !user.Active {
		return "", 0, entities.User{}, ErrUserInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", 0, entities.User{}, ErrInvalidCredentials
	}

	token, expiresIn, err := u.tokens.Issue(user)
	if err != nil {
		return "", 0, entities.User{}, err
	}
	return token, expiresIn, user, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) SetActive(ctx context.Context, id string, active bool) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	updated, err := u.repo.SetActive(ctx, id, active)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func normalizeEmail(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
