package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"Storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingOptionCreate(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		router, db := setupTestRouter(t)
		user := createUser(t, db, "adam", false)

		w := doRequest(t, router, http.MethodPost, "/api/shipping-options", tokenFor(t, user), map[string]any{
			"title": "standard", "description": "5-7 days", "cost": 0.00,
		})
		requireStatus(t, w, http.StatusForbidden)
	})

	t.Run("a zero cost is valid", func(t *testing.T) {
		router, db := setupTestRouter(t)
		admin := createUser(t, db, "admin", true)

		w := doRequest(t, router, http.MethodPost, "/api/shipping-options", tokenFor(t, admin), map[string]any{
			"title": "standard", "description": "5-7 days", "cost": 0.00,
		})
		requireStatus(t, w, http.StatusOK)

		var created models.ShippingOption
		decodeJSON(t, w, &created)
		assert.Equal(t, "standard", created.Title)
		assert.Equal(t, 0.00, created.Cost)
	})

	t.Run("a missing cost is rejected", func(t *testing.T) {
		router, db := setupTestRouter(t)
		admin := createUser(t, db, "admin", true)

		w := doRequest(t, router, http.MethodPost, "/api/shipping-options", tokenFor(t, admin), map[string]any{
			"title": "standard", "description": "5-7 days",
		})
		requireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("rejects a title outside 3 to 30 characters", func(t *testing.T) {
		router, db := setupTestRouter(t)
		admin := createUser(t, db, "admin", true)

		w := doRequest(t, router, http.MethodPost, "/api/shipping-options", tokenFor(t, admin), map[string]any{
			"title": "ab", "description": "5-7 days", "cost": 1.00,
		})
		requireStatus(t, w, http.StatusBadRequest)
	})
}

func TestShippingOptionRead(t *testing.T) {
	t.Run("list requires a login", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(t, router, http.MethodGet, "/api/shipping-options", "", nil)
		requireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("lists every option for any logged-in user", func(t *testing.T) {
		router, db := setupTestRouter(t)
		user := createUser(t, db, "adam", false)
		createShippingOption(t, db, "standard", 0.00)
		createShippingOption(t, db, "express", 9.95)

		w := doRequest(t, router, http.MethodGet, "/api/shipping-options", tokenFor(t, user), nil)
		requireStatus(t, w, http.StatusOK)

		var options []models.ShippingOption
		decodeJSON(t, w, &options)
		assert.Len(t, options, 2)
	})

	t.Run("404 for an absent id", func(t *testing.T) {
		router, db := setupTestRouter(t)
		user := createUser(t, db, "adam", false)

		w := doRequest(t, router, http.MethodGet, "/api/shipping-options/999", tokenFor(t, user), nil)
		requireStatus(t, w, http.StatusNotFound)
	})
}

func TestShippingOptionUpdate(t *testing.T) {
	t.Run("replaces every field", func(t *testing.T) {
		router, db := setupTestRouter(t)
		admin := createUser(t, db, "admin", true)
		option := createShippingOption(t, db, "standard", 0.00)

		w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/shipping-options/%d", option.ID), tokenFor(t, admin), map[string]any{
			"title": "priority", "description": "next day", "cost": 19.95,
		})
		requireStatus(t, w, http.StatusOK)

		var updated models.ShippingOption
		require.NoError(t, db.First(&updated, option.ID).Error)
		assert.Equal(t, "priority", updated.Title)
		assert.Equal(t, 19.95, updated.Cost)
	})

	t.Run("404 when absent", func(t *testing.T) {
		router, db := setupTestRouter(t)
		admin := createUser(t, db, "admin", true)

		w := doRequest(t, router, http.MethodPut, "/api/shipping-options/999", tokenFor(t, admin), map[string]any{
			"title": "priority", "description": "next day", "cost": 19.95,
		})
		requireStatus(t, w, http.StatusNotFound)
	})
}

func TestShippingOptionDelete(t *testing.T) {
	t.Run("removes the option and returns it", func(t *testing.T) {
		router, db := setupTestRouter(t)
		admin := createUser(t, db, "admin", true)
		option := createShippingOption(t, db, "standard", 0.00)

		w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/shipping-options/%d", option.ID), tokenFor(t, admin), nil)
		requireStatus(t, w, http.StatusOK)

		var deleted models.ShippingOption
		decodeJSON(t, w, &deleted)
		assert.Equal(t, option.ID, deleted.ID)

		var count int64
		require.NoError(t, db.Model(&models.ShippingOption{}).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})
}
