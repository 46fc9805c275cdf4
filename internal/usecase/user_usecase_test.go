package usecase

import (
	"context"
	"errors"
	"testing"

	"elo_drinks/internal/domain/entities"
	mock_interfaces "elo_drinks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserUseCase_Register(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		cases := []struct {
			name     string
			userName string
			email    string
			password string
			role     entities.UserRole
		}{
			{"blank name", " ", "ana@example.com", "supersecret", entities.RoleCliente},
			{"malformed email", "Ana", "ana.example.com", "supersecret", entities.RoleCliente},
			{"short password", "Ana", "ana@example.com", "curta", entities.RoleCliente},
			{"unknown role", "Ana", "ana@example.com", "supersecret", "gerente"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Register(context.Background(), tc.userName, tc.email, "", tc.password, tc.role); !errors.Is(err, ErrInvalidUserInput) {
					t.Fatalf("expected ErrInvalidUserInput, got %v", err)
				}
			})
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u-1"}, nil)

		if _, err := uc.Register(context.Background(), "Ana", "Ana@Example.com", "", "supersecret", entities.RoleCliente); !errors.Is(err, ErrEmailAlreadyTaken) {
			t.Fatalf("expected ErrEmailAlreadyTaken, got %v", err)
		}
	})

	t.Run("success defaults to cliente and hashes the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, user entities.User) (entities.User, error) {
				if user.ID == "" || !user.Active {
					t.Fatalf("unexpected user: %+v", user)
				}
				if user.Email != "ana@example.com" {
					t.Fatalf("email must be normalized, got %q", user.Email)
				}
				if user.Role != entities.RoleCliente {
					t.Fatalf("expected default role cliente, got %s", user.Role)
				}
				if user.PasswordHash == "supersecret" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")) != nil {
					t.Fatalf("password must be stored as a bcrypt hash")
				}
				return user, nil
			},
		)

		user, err := uc.Register(context.Background(), "Ana", " Ana@Example.com ", "+55 11 99999-0000", "supersecret", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Name != "Ana" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})
}

func TestUserUseCase_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash setup failed: %v", err)
	}
	stored := entities.User{
		ID:           "u-1",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         entities.RoleCliente,
		Active:       true,
	}

	t.Run("success issues a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewUserUseCase(repo, tokens)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)
		tokens.EXPECT().Issue(stored).Return("jwt-token", int64(3600), nil)

		token, expiresIn, user, err := uc.Authenticate(context.Background(), " Ana@Example.com ", "supersecret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "jwt-token" || expiresIn != 3600 || user.ID != "u-1" {
			t.Fatalf("unexpected result: %q %d %+v", token, expiresIn, user)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(entities.User{}, nil)

		if _, _, _, err := uc.Authenticate(context.Background(), "nobody@example.com", "supersecret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)

		if _, _, _, err := uc.Authenticate(context.Background(), "ana@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		inactive := stored
		inactive.Active = false
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(inactive, nil)

		if _, _, _, err := uc.Authenticate(context.Background(), "ana@example.com", "supersecret"); !errors.Is(err, ErrUserInactive) {
			t.Fatalf("expected ErrUserInactive, got %v", err)
		}
	})
}

func TestUserUseCase_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo, nil)

	t.Run("missing user", func(t *testing.T) {
		repo.EXPECT().SetActive(gomock.Any(), "missing", false).Return(entities.User{}, nil)
		if _, err := uc.SetActive(context.Background(), "missing", false); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("deactivated", func(t *testing.T) {
		repo.EXPECT().SetActive(gomock.Any(), "u-1", false).Return(entities.User{ID: "u-1", Active: false}, nil)
		user, err := uc.SetActive(context.Background(), "u-1", false)
		if err != nil || user.Active {
			t.Fatalf("unexpected result: %+v %v", user, err)
		}
	})
}
