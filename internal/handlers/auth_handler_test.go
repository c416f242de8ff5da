package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/harentsoaR/medicare-api/internal/config"
	"github.com/harentsoaR/medicare-api/internal/utils"
)

func newAuthAPI(t *testing.T) *testAPI {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	api := newTestAPI(t)
	api.h.WithAuth(config.AuthConfig{
		Enabled:           true,
		JWTSecret:         "s3cret",
		AdminEmail:        "admin@medicare.com",
		AdminPasswordHash: string(hash),
	}, utils.NewTokenIssuer("s3cret", nil))
	return api.serve()
}

func TestAuth_DisabledLeavesAPIOpen(t *testing.T) {
	api := newTestAPI(t).serve()

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/patients", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, "/auth/login", map[string]string{}).Code)
}

func TestAuth_Login(t *testing.T) {
	api := newAuthAPI(t)

	w := api.do(http.MethodGet, "/api/patients", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tests := []struct {
		name  string
		email string
		pass  string
		want  int
	}{
		{"wrong password", "admin@medicare.com", "nope", http.StatusUnauthorized},
		{"wrong email", "root@medicare.com", "letmein", http.StatusUnauthorized},
		{"not an email", "admin", "letmein", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, "/auth/login", map[string]string{"email": tt.email, "password": tt.pass})
			assert.Equal(t, tt.want, w.Code)
		})
	}

	w = api.do(http.MethodPost, "/auth/login", map[string]string{"email": "Admin@Medicare.com", "password": "letmein"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[map[string]string](t, w)
	assert.Equal(t, "admin", resp["role"])
	require.NotEmpty(t, resp["token"])

	api.token = resp["token"]
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/patients", nil).Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/health", nil).Code)
}
