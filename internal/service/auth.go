package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/nkraeva/task-tracker-api/internal/model"
	"github.com/nkraeva/task-tracker-api/internal/repo"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService - регистрация и вход пользователей.
type AuthService struct {
	users repo.UserRepository
}

func NewAuthService(users repo.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register хэширует пароль через bcrypt и создает пользователя.
// Пароль в открытом виде нигде не сохраняется.
func (s *AuthService) Register(ctx context.Context, username, password string) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		return model.User{}, err
	}

	return model.User{ID: id, Username: username}, nil
}

// Login ищет пользователя по имени и сравнивает bcrypt-хэш.
// Неизвестное имя и неверный пароль для клиента неразличимы.
func (s *AuthService) Login(ctx context.Context, username, password string) (model.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrorNotFound) {
			return model.User{}, ErrInvalidCredentials
		}
		return model.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return model.User{}, ErrInvalidCredentials
	}

	u.Password = ""
	return u, nil
}
