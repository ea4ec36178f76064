package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nkraeva/task-tracker-api/internal/auth"
)

func TestRegister(t *testing.T) {
	insertUser := regexp.QuoteMeta("INSERT INTO users (username,password) VALUES (?,?)")

	tests := []struct {
		name        string
		body        string
		contentType string
		setupMock   func(sqlmock.Sqlmock)
		wantCode    int
		wantBody    string
	}{
		{
			name:        "successful registration",
			body:        `{"username":"alice","password":"pw1"}`,
			contentType: "application/json",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertUser).
					WithArgs("alice", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			wantCode: http.StatusCreated,
			wantBody: `{"message":"User registered successfully"}`,
		},
		{
			name:        "duplicate username",
			body:        `{"username":"alice","password":"pw1"}`,
			contentType: "application/json",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertUser).
					WithArgs("alice", sqlmock.AnyArg()).
					WillReturnError(&mysql.MySQLError{
						Number:  1062,
						Message: "Duplicate entry 'alice' for key 'users.username'",
					})
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Username already exists"}`,
		},
		{
			name:        "store unreachable",
			body:        `{"username":"alice","password":"pw1"}`,
			contentType: "application/json",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertUser).
					WithArgs("alice", sqlmock.AnyArg()).
					WillReturnError(errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Database connection failed"}`,
		},
		{
			name:        "users table missing",
			body:        `{"username":"alice","password":"pw1"}`,
			contentType: "application/json",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertUser).
					WithArgs("alice", sqlmock.AnyArg()).
					WillReturnError(&mysql.MySQLError{
						Number:  1146,
						Message: "Table 'task_manager.users' doesn't exist",
					})
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Database query failed"}`,
		},
		{
			name:        "malformed json",
			body:        `{"username":`,
			contentType: "application/json",
			setupMock:   func(sqlmock.Sqlmock) {},
			wantCode:    http.StatusBadRequest,
			wantBody:    `{"error":"invalid json"}`,
		},
		{
			name:        "non-json content type",
			body:        `username=alice&password=pw1`,
			contentType: "application/x-www-form-urlencoded",
			setupMock:   func(sqlmock.Sqlmock) {},
			wantCode:    http.StatusUnsupportedMediaType,
			wantBody:    `{"error":"Content-Type must be application/json"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mock := newTestRouter(t)
			tt.setupMock(mock)

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLogin(t *testing.T) {
	selectUser := regexp.QuoteMeta("SELECT id, username, password FROM users WHERE username = ?")

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("successful login sets session cookie", func(t *testing.T) {
		router, mock := newTestRouter(t)
		mock.ExpectQuery(selectUser).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).
				AddRow(1, "alice", string(hash)))

		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"alice","password":"pw1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"username":"alice"}`, w.Body.String())

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "session_token", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		claims, err := auth.NewTokenManager(testSecret).Verify(cookies[0].Value)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "alice", claims.Username)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password", func(t *testing.T) {
		router, mock := newTestRouter(t)
		mock.ExpectQuery(selectUser).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).
				AddRow(1, "alice", string(hash)))

		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"alice","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid username or password"}`, w.Body.String())
		assert.Empty(t, w.Result().Cookies())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown username", func(t *testing.T) {
		router, mock := newTestRouter(t)
		mock.ExpectQuery(selectUser).
			WithArgs("bob").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}))

		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"bob","password":"pw1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid username or password"}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store unreachable", func(t *testing.T) {
		router, mock := newTestRouter(t)
		mock.ExpectQuery(selectUser).
			WithArgs("alice").
			WillReturnError(errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/login",
			strings.NewReader(`{"username":"alice","password":"pw1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Database connection failed"}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
