package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academically/academically-api/internal/models"
	"github.com/academically/academically-api/pkg/config"
	appErrors "github.com/academically/academically-api/pkg/errors"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestVerifier() *JWTVerifier {
	return NewJWTVerifier(config.AuthConfig{TokenSecret: testSecret})
}

func TestJWTVerifierRoundTrip(t *testing.T) {
	credential := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "uid-123",
		"email": "ana@example.com",
		"name":  "Ana",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	principal, err := newTestVerifier().Verify(context.Background(), credential, models.ClientAndroidStudent)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", principal.UID)
	assert.Equal(t, "ana@example.com", principal.Email)
	assert.Equal(t, models.RoleStudent, principal.Role)
	assert.Contains(t, principal.Permissions, "Ver eventos")
}

func TestJWTVerifierAdminClientTypes(t *testing.T) {
	credential := signToken(t, testSecret, jwt.MapClaims{
		"sub": "uid-admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	verifier := newTestVerifier()

	for _, clientType := range []models.ClientType{models.ClientDesktopAdmin, models.ClientWebAdmin} {
		principal, err := verifier.Verify(context.Background(), credential, clientType)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, principal.Role)
		assert.NotEmpty(t, principal.Permissions)
	}
}

func TestJWTVerifierUnknownClientTypeHasNoRole(t *testing.T) {
	credential := signToken(t, testSecret, jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	principal, err := newTestVerifier().Verify(context.Background(), credential, models.ClientUnknown)
	require.NoError(t, err)
	assert.Equal(t, models.RoleNone, principal.Role)
	assert.NotNil(t, principal.Permissions)
	assert.Empty(t, principal.Permissions)
}

func TestJWTVerifierRejectsBadSignature(t *testing.T) {
	credential := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := newTestVerifier().Verify(context.Background(), credential, models.ClientAndroidStudent)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 401, appErr.Status)
	assert.Equal(t, "Token inválido o expirado", appErr.Message)
}

func TestJWTVerifierRejectsExpiredToken(t *testing.T) {
	credential := signToken(t, testSecret, jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := newTestVerifier().Verify(context.Background(), credential, models.ClientAndroidStudent)
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}

func TestJWTVerifierChecksIssuer(t *testing.T) {
	verifier := NewJWTVerifier(config.AuthConfig{TokenSecret: testSecret, TokenIssuer: "academically"})

	good := signToken(t, testSecret, jwt.MapClaims{
		"sub": "uid-123",
		"iss": "academically",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := verifier.Verify(context.Background(), good, models.ClientAndroidStudent)
	require.NoError(t, err)

	bad := signToken(t, testSecret, jwt.MapClaims{
		"sub": "uid-123",
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err = verifier.Verify(context.Background(), bad, models.ClientAndroidStudent)
	require.Error(t, err)
}

func TestAuthServiceMeRequiresBearerHeader(t *testing.T) {
	svc := NewAuthService(newTestVerifier(), nil)

	for _, header := range []string{"", "Token abc", "bearer abc"} {
		_, err := svc.Me(context.Background(), header, string(models.ClientAndroidStudent))
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, 401, appErr.Status)
		assert.Equal(t, "Token requerido: Authorization: Bearer <firebase_token>", appErr.Message)
	}
}

func TestAuthServiceMeResolvesPrincipal(t *testing.T) {
	svc := NewAuthService(newTestVerifier(), nil)
	credential := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "uid-123",
		"email": "ana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	principal, err := svc.Me(context.Background(), "Bearer "+credential, "DESKTOP_ADMIN")
	require.NoError(t, err)
	assert.Equal(t, models.ClientDesktopAdmin, principal.ClientType)
	assert.Equal(t, models.RoleAdmin, principal.Role)
}

func TestAuthServiceClientInfo(t *testing.T) {
	svc := NewAuthService(newTestVerifier(), nil)

	info := svc.ClientInfo()
	require.Len(t, info.ClientTypes, 3)
	assert.Equal(t, models.RoleStudent, info.ClientTypes["ANDROID_STUDENT"].Role)
	assert.Equal(t, models.RoleAdmin, info.ClientTypes["WEB_ADMIN"].Role)
	assert.Contains(t, info.HeadersRequired, "X-Client-Type")
	assert.Len(t, info.Flow, 4)
}

func TestAuthServiceStubsReturnNotImplemented(t *testing.T) {
	svc := NewAuthService(newTestVerifier(), nil)

	err := svc.Google(context.Background())
	require.Error(t, err)
	assert.Equal(t, 501, appErrors.FromError(err).Status)

	err = svc.Validate(context.Background())
	require.Error(t, err)
	assert.Equal(t, 501, appErrors.FromError(err).Status)
}
