package service

import (
	"context"
	"fmt"

	"github.com/nkraeva/task-tracker-api/internal/repo"
)

// Статусы хранилища на диагностической странице.
const (
	StatusConnected    = "Connected"
	StatusDisconnected = "Disconnected"
	StatusTableError   = "Table Error"
)

const msgConnectFailed = "Could not connect to MySQL. Check the database server and .env settings."

// Report - результат живой проверки хранилища.
type Report struct {
	Status    string
	ErrMsg    string
	UserCount int
}

// DiagService проверяет доступность хранилища для диагностической страницы.
type DiagService struct {
	users repo.UserRepository
}

func NewDiagService(users repo.UserRepository) *DiagService {
	return &DiagService{users: users}
}

// Check опрашивает хранилище на каждый вызов: сначала ping, затем счетчик
// пользователей. Ошибки кодируются в отчет и наружу не возвращаются.
func (s *DiagService) Check(ctx context.Context) Report {
	if err := s.users.Ping(ctx); err != nil {
		return Report{Status: StatusDisconnected, ErrMsg: msgConnectFailed}
	}

	n, err := s.users.Count(ctx)
	if err != nil {
		return Report{
			Status: StatusTableError,
			ErrMsg: fmt.Sprintf("Connected to DB, but failed to fetch users: %v", err),
		}
	}

	return Report{Status: StatusConnected, UserCount: n}
}
