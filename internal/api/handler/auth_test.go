package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gigflow/backend/internal/apperrors"
	"gigflow/backend/internal/config"
	"gigflow/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_CreatesUserAndReturnsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := new(MockStorage)
	store.On("CreateUser", mock.AnythingOfType("*models.User")).Return(nil)

	body := `{"name":"Dana","email":"dana@example.com","password":"hunter22"}`
	r := testRouter(newTestHandler(store, nil), "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	// The password never appears in the response, hashed or not.
	assert.NotContains(t, w.Body.String(), "hunter22")
	assert.NotContains(t, w.Body.String(), "passwordHash")

	store.AssertCalled(t, "CreateUser", mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "dana@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")) == nil
	}))

	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == config.TokenCookie && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "token cookie should be set")
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := new(MockStorage)
	store.On("CreateUser", mock.Anything).Return(apperrors.ErrEmailTaken)

	body := `{"name":"Dana","email":"dana@example.com","password":"hunter22"}`
	r := testRouter(newTestHandler(store, nil), "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	store := new(MockStorage)
	store.On("GetUserByEmail", "dana@example.com").Return(&models.User{
		ID:           freelancerID,
		Name:         "Dana",
		Email:        "dana@example.com",
		PasswordHash: string(hash),
	}, nil)

	body := `{"email":"dana@example.com","password":"hunter22"}`
	r := testRouter(newTestHandler(store, nil), "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	store := new(MockStorage)
	store.On("GetUserByEmail", "dana@example.com").Return(&models.User{
		Email:        "dana@example.com",
		PasswordHash: string(hash),
	}, nil)

	body := `{"email":"dana@example.com","password":"wrong"}`
	r := testRouter(newTestHandler(store, nil), "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := new(MockStorage)
	store.On("GetUserByEmail", "nobody@example.com").Return(nil, apperrors.ErrBadLogin)

	body := `{"email":"nobody@example.com","password":"whatever"}`
	r := testRouter(newTestHandler(store, nil), "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	r.ServeHTTP(w, req)

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}
