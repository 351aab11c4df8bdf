package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/database"
	"backend/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret)
	require.NoError(t, err)
	return signed
}

func protectedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("role"),
		})
	})
	app.Get("/protected", chain...)
	return app
}

func request(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := app.Test(req, 10000)
	require.NoError(t, err)
	return res
}

func TestJWTMiddlewareMissingToken(t *testing.T) {
	app := protectedApp(JWTMiddleware)

	res := request(t, app, "")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	app := protectedApp(JWTMiddleware)

	token := signToken(t, jwt.MapClaims{
		"user_id": "user-1",
		"email":   "user@example.com",
		"role":    models.RoleBuyer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	res := request(t, app, token)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	app := protectedApp(JWTMiddleware)

	token := signToken(t, jwt.MapClaims{
		"user_id": "user-1",
		"email":   "user@example.com",
		"role":    models.RoleBuyer,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	res := request(t, app, token)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestJWTMiddlewareMissingClaims(t *testing.T) {
	app := protectedApp(JWTMiddleware)

	token := signToken(t, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	res := request(t, app, token)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestJWTMiddlewareNonStringClaim(t *testing.T) {
	app := protectedApp(JWTMiddleware)

	// Signed correctly, but user_id is a number instead of a string.
	token := signToken(t, jwt.MapClaims{
		"user_id": 12345,
		"email":   "user@example.com",
		"role":    models.RoleBuyer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	res := request(t, app, token)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.Migrate(db)
	database.DB = db

	app := protectedApp(JWTMiddleware, RequireAdmin)

	adminToken := signToken(t, jwt.MapClaims{
		"user_id": "admin-1",
		"email":   "admin@example.com",
		"role":    models.RoleAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	res := request(t, app, adminToken)
	require.Equal(t, http.StatusOK, res.StatusCode)

	buyerToken := signToken(t, jwt.MapClaims{
		"user_id": "buyer-1",
		"email":   "buyer@example.com",
		"role":    models.RoleBuyer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	res = request(t, app, buyerToken)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRequireAdminViaGrantedRole(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	database.Migrate(db)
	database.DB = db

	grant := models.UserRole{UserID: "seller-1", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&grant).Error)

	app := protectedApp(JWTMiddleware, RequireAdmin)

	token := signToken(t, jwt.MapClaims{
		"user_id": "seller-1",
		"email":   "seller@example.com",
		"role":    models.RoleSeller,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	res := request(t, app, token)
	require.Equal(t, http.StatusOK, res.StatusCode)
}
