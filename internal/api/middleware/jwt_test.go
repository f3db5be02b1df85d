package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		SigningKey: []byte("test-signing-key-1234567890123456"),
		Issuer:     "fjp-irms",
		ExpiresIn:  time.Hour,
	}
}

func TestJWTConfigValidateToken_Success(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateToken(cfg, "user-1", "alice", "Admin")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := cfg.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Admin", claims.Role)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.NotBefore)
}

func TestJWTConfigValidateToken_RejectsInvalidIssuer(t *testing.T) {
	issuerCfg := testJWTConfig()
	token, _, err := GenerateToken(issuerCfg, "user-1", "alice", "Viewer")
	require.NoError(t, err)

	validatorCfg := JWTConfig{
		SigningKey: issuerCfg.SigningKey,
		Issuer:     "other-issuer",
	}
	_, err = validatorCfg.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestJWTConfigValidateToken_RejectsWrongKey(t *testing.T) {
	token, _, err := GenerateToken(testJWTConfig(), "user-1", "alice", "Viewer")
	require.NoError(t, err)

	_, err = JWTConfig{
		SigningKey: []byte("another-key-123456789012345678901234"),
		Issuer:     "fjp-irms",
	}.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTConfigValidateToken_RejectsNoneSigningMethod(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "fjp-irms",
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = testJWTConfig().ValidateToken(tokenString)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTConfigValidateToken_RejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpiresIn = -time.Minute

	token, _, err := GenerateToken(cfg, "user-1", "alice", "Viewer")
	require.NoError(t, err)

	_, err = testJWTConfig().ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTConfigValidateToken_RequiresSigningKey(t *testing.T) {
	token, _, err := GenerateToken(testJWTConfig(), "user-1", "alice", "Viewer")
	require.NoError(t, err)

	_, err = JWTConfig{Issuer: "fjp-irms"}.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing key")
}

func TestJWTAuth_PopulatesContext(t *testing.T) {
	cfg := testJWTConfig()
	token, _, err := GenerateToken(cfg, "user-1", "alice", "RA")
	require.NoError(t, err)

	router := gin.New()
	router.Use(JWTAuth(cfg))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString("user_id"),
			"username": GetUsername(c.Request.Context()),
			"role":     GetRole(c.Request.Context()),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"RA"`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestJWTAuth_RejectsMissingAndMalformedHeaders(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(testJWTConfig()))
	router.GET("/whoami", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	router := gin.New()
	router.GET("/admin-only", func(c *gin.Context) {
		c.Set("role", "Viewer")
	}, RequireRoles("Admin", "RA"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/allowed", func(c *gin.Context) {
		c.Set("role", "RA")
	}, RequireRoles("Admin", "RA"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/allowed", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
