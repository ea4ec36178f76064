package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		data     interface{}
		wantCode int
		wantBody map[string]interface{}
	}{
		{
			name:     "object body",
			code:     http.StatusOK,
			data:     map[string]interface{}{"id": 1, "username": "alice"},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{"id": float64(1), "username": "alice"}, // JSON unmarshals numbers as float64
		},
		{
			name:     "created",
			code:     http.StatusCreated,
			data:     map[string]string{"status": "pending"},
			wantCode: http.StatusCreated,
			wantBody: map[string]interface{}{"status": "pending"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			JSON(w, r, tt.code, tt.data)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var got map[string]interface{}
			err := json.NewDecoder(w.Body).Decode(&got)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, got)
		})
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/register", nil)

	Error(w, r, http.StatusBadRequest, "Username already exists")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Username already exists"}`, w.Body.String())
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		message string
		want    string
	}{
		{"registered", http.StatusCreated, "User registered successfully", `{"message":"User registered successfully"}`},
		{"updated", http.StatusOK, "Updated", `{"message":"Updated"}`},
		{"deleted", http.StatusOK, "Deleted", `{"message":"Deleted"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", nil)

			Message(w, r, tt.code, tt.message)

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}
