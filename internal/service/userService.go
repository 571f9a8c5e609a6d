package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	repository "github.com/ds124wfegd/image-service/internal/database/postgres"
	"github.com/ds124wfegd/image-service/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
	cost     int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
		cost:     bcrypt.DefaultCost,
	}
}

// unknownUserHash is generated once with the service cost, never matches a stored account.
func (s *userService) unknownUserHash() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("unknown-user-placeholder"), s.cost)
		if err != nil {
			logrus.WithError(err).Error("Failed to generate placeholder password hash")
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

// Register создает пользователя с bcrypt-хешем пароля
func (s *userService) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", entity.ErrInvalidParameters)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		// bcrypt rejects passwords longer than 72 bytes
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidParameters, err)
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")

	return user, nil
}

// Login returns ErrInvalidCredentials for both an unknown user and a wrong password.
func (s *userService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, entity.ErrUserNotFound) {
		// same bcrypt cost as a real mismatch so response time does not reveal unknown usernames
		_ = bcrypt.CompareHashAndPassword(s.unknownUserHash(), []byte(password))
		return nil, entity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	return user, nil
}
