package handlers_test

import (
	"net/http"
	"testing"

	"Storefront/middleware"
	"Storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("creates the account and returns a token", func(t *testing.T) {
		router, db := setupTestRouter(t)

		w := doRequest(t, router, http.MethodPost, "/api/users", "", map[string]any{
			"username": "adam",
			"email":    "adam@example.com",
			"password": "123456",
		})
		requireStatus(t, w, http.StatusCreated)
		assert.NotEmpty(t, w.Header().Get(middleware.TokenHeader))

		var body map[string]any
		decodeJSON(t, w, &body)
		assert.Equal(t, "adam", body["username"])
		assert.Equal(t, false, body["admin"])
		assert.NotContains(t, w.Body.String(), "123456")

		var count int64
		require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		router, db := setupTestRouter(t)
		createUser(t, db, "adam", false)

		w := doRequest(t, router, http.MethodPost, "/api/users", "", map[string]any{
			"username": "adam2",
			"email":    "adam@example.com",
			"password": "123456",
		})
		requireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(t, router, http.MethodPost, "/api/users", "", map[string]any{
			"username": "adam",
			"email":    "not-an-email",
			"password": "123456",
		})
		requireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(t, router, http.MethodPost, "/api/users", "", map[string]any{
			"username": "adam",
			"email":    "adam@example.com",
			"password": "123",
		})
		requireStatus(t, w, http.StatusBadRequest)
	})
}

func TestLogin(t *testing.T) {
	t.Run("returns a token for valid credentials", func(t *testing.T) {
		router, db := setupTestRouter(t)
		createUser(t, db, "adam", false)

		w := doRequest(t, router, http.MethodPost, "/api/login", "", map[string]any{
			"email":    "adam@example.com",
			"password": "123456",
		})
		requireStatus(t, w, http.StatusOK)

		var body map[string]string
		decodeJSON(t, w, &body)
		assert.NotEmpty(t, body["token"])

		// The issued token authenticates follow-up requests.
		orders := doRequest(t, router, http.MethodGet, "/api/orders", body["token"], nil)
		requireStatus(t, orders, http.StatusOK)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		router, db := setupTestRouter(t)
		createUser(t, db, "adam", false)

		w := doRequest(t, router, http.MethodPost, "/api/login", "", map[string]any{
			"email":    "adam@example.com",
			"password": "wrong-password",
		})
		requireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(t, router, http.MethodPost, "/api/login", "", map[string]any{
			"email":    "ghost@example.com",
			"password": "123456",
		})
		requireStatus(t, w, http.StatusBadRequest)
	})
}

func TestGetUserList(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		router, db := setupTestRouter(t)
		user := createUser(t, db, "adam", false)

		w := doRequest(t, router, http.MethodGet, "/api/users", tokenFor(t, user), nil)
		requireStatus(t, w, http.StatusForbidden)
	})

	t.Run("lists accounts without digests", func(t *testing.T) {
		router, db := setupTestRouter(t)
		admin := createUser(t, db, "admin", true)
		createUser(t, db, "adam", false)

		w := doRequest(t, router, http.MethodGet, "/api/users", tokenFor(t, admin), nil)
		requireStatus(t, w, http.StatusOK)

		var users []models.User
		decodeJSON(t, w, &users)
		assert.Len(t, users, 2)
		assert.NotContains(t, w.Body.String(), "PasswordDigest")
	})
}
