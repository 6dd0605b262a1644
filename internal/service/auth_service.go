package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/snapwork/snapwork/internal/errors"
	"github.com/snapwork/snapwork/internal/models"
	"github.com/snapwork/snapwork/internal/store"
)

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 24 * time.Hour
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, string, error)
}

type authService struct {
	store store.Store
	redis *redis.Client
}

func NewAuthService(st store.Store, redisClient *redis.Client) AuthService {
	return &authService{store: st, redis: redisClient}
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	users := s.store.LoadUsers(ctx)

	for _, u := range users {
		if u.Email == req.Email {
			return nil, apperrors.ErrEmailTaken
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:        maxUserID(users) + 1,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hashed),
		UserType:  req.UserType,
		Location:  req.Location,
		Lat:       req.Lat,
		Lng:       req.Lng,
		CreatedAt: time.Now(),
	}

	users = append(users, user)
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, string, error) {
	users := s.store.LoadUsers(ctx)

	for i := range users {
		u := &users[i]
		if u.Email != req.Email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
			break
		}

		token := uuid.New().String()
		if err := s.redis.Set(ctx, sessionKeyPrefix+token, u.ID, sessionTTL).Err(); err != nil {
			return nil, "", err
		}

		return u.ToResponse(), token, nil
	}

	return nil, "", apperrors.ErrInvalidCredentials
}

func maxUserID(users []models.User) int64 {
	var max int64
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max
}
