package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/snapwork/snapwork/internal/errors"
	"github.com/snapwork/snapwork/internal/models"
)

func TestRegisterAssignsNextID(t *testing.T) {
	fs := newTestStore(t)
	seedUsers(t, fs)
	svc := NewAuthService(fs, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, &models.RegisterRequest{
		Name:     "New Nisha",
		Email:    "nisha@example.com",
		Phone:    "9800000003",
		Password: "s3cret-pass",
		UserType: models.UserTypeWorker,
		Location: "HSR Layout, Bangalore",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID != 3 {
		t.Errorf("user.ID = %d, want 3", user.ID)
	}

	// the plaintext password never leaves the service
	stored := fs.LoadUsers(ctx)
	var persisted *models.User
	for i := range stored {
		if stored[i].ID == user.ID {
			persisted = &stored[i]
		}
	}
	if persisted == nil {
		t.Fatal("registered user not persisted")
	}
	if persisted.Password == "s3cret-pass" {
		t.Error("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(persisted.Password), []byte("s3cret-pass")) != nil {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	fs := newTestStore(t)
	seedUsers(t, fs)
	svc := NewAuthService(fs, nil)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Impostor",
		Email:    "chitra@example.com",
		Phone:    "9800000009",
		Password: "whatever",
		UserType: models.UserTypeCustomer,
	})
	if err != apperrors.ErrEmailTaken {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	fs := newTestStore(t)
	svc := NewAuthService(fs, nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &models.RegisterRequest{
		Name:     "Login Lata",
		Email:    "lata@example.com",
		Phone:    "9800000004",
		Password: "right-password",
		UserType: models.UserTypeCustomer,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "right-password"},
		{"wrong password", "lata@example.com", "wrong-password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, &models.LoginRequest{Email: tt.email, Password: tt.password})
			if err != apperrors.ErrInvalidCredentials {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
