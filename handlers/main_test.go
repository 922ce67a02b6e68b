package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"Storefront/config"
	"Storefront/jwt"
	"Storefront/middleware"
	"Storefront/models"
	"Storefront/routers"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type routerWithDB struct {
	router *gin.Engine
	db     *gorm.DB
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:  testSecret,
		BcryptCost: bcrypt.MinCost,
	}
}

// setupTestRouter wires the full middleware/handler chain against an
// in-memory database.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A second pooled connection would see a different empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	router := routers.SetupRouters(db, testConfig(), zerolog.Nop())
	return router, db
}

func createUser(t *testing.T, db *gorm.DB, username string, admin bool) models.User {
	t.Helper()

	digest, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:       username,
		Email:          username + "@example.com",
		PasswordDigest: string(digest),
		Admin:          admin,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := jwt.GenerateToken(user.ID, user.Admin, testSecret, time.Now().Add(time.Hour).Unix())
	require.NoError(t, err)
	return token
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createProduct(t *testing.T, db *gorm.DB, categoryID uint, title string, price float64) models.Product {
	t.Helper()

	product := models.Product{
		Title:          title,
		Description:    "description of " + title,
		Price:          price,
		SmallImagePath: "/small.jpg",
		LargeImagePath: "/large.jpg",
		CategoryID:     categoryID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func createShippingOption(t *testing.T, db *gorm.DB, title string, cost float64) models.ShippingOption {
	t.Helper()

	shippingOption := models.ShippingOption{
		Title:       title,
		Description: "description of " + title,
		Cost:        cost,
	}
	require.NoError(t, db.Create(&shippingOption).Error)
	return shippingOption
}

// doRequest performs a request against the router, attaching the token in
// the x-auth-token header when one is given.
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
