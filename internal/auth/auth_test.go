package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicare/internal/models"
)

func TestTokenPairRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("access", "refresh")

	access, refresh, err := issuer.Pair(42, models.RoleDoctor)
	require.NoError(t, err)

	claims, err := issuer.ParseAccess(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.RoleDoctor, claims.Role)

	claims, err = issuer.ParseRefresh(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	issuer := NewTokenIssuer("access", "refresh")
	access, refresh, err := issuer.Pair(1, models.RolePatient)
	require.NoError(t, err)

	_, err = issuer.ParseAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = issuer.ParseRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredAccessToken(t *testing.T) {
	issuer := NewTokenIssuer("access", "refresh")
	issued := time.Now().Add(-time.Hour)
	issuer.now = func() time.Time { return issued }
	access, _, err := issuer.Pair(1, models.RolePatient)
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.ParseAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func newRouter(issuer *TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", AuthMiddleware(issuer))
	api.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(ContextUserID), "role": c.GetString(ContextRole)})
	})
	api.GET("/doctor", RequireRole(models.RoleDoctor), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	issuer := NewTokenIssuer("access", "refresh")
	r := newRouter(issuer)
	access, refresh, err := issuer.Pair(7, models.RolePatient)
	require.NoError(t, err)

	w := do(r, "/api/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "NO_AUTH_HEADER")

	w = do(r, "/api/me", refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")

	w = do(r, "/api/me", access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"role":"patient"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	issuer := NewTokenIssuer("access", "refresh")
	r := newRouter(issuer)
	patient, _, err := issuer.Pair(1, models.RolePatient)
	require.NoError(t, err)
	doctor, _, err := issuer.Pair(2, models.RoleDoctor)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, do(r, "/api/doctor", patient).Code)
	assert.Equal(t, http.StatusNoContent, do(r, "/api/doctor", doctor).Code)
}
