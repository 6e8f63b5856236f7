package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/academically/academically-api/internal/models"
	"github.com/academically/academically-api/pkg/config"
	appErrors "github.com/academically/academically-api/pkg/errors"
)

// clientTypeTable is the closed role-by-client-type mapping. Client types
// are the only access-control dimension this API has.
var clientTypeTable = map[models.ClientType]models.ClientTypeInfo{
	models.ClientAndroidStudent: {
		Role:        models.RoleStudent,
		Description: "App móvil para estudiantes",
		Permissions: []string{"Ver eventos", "Suscribirse a canales"},
	},
	models.ClientDesktopAdmin: {
		Role:        models.RoleAdmin,
		Description: "App desktop para administradores",
		Permissions: []string{"Crear eventos", "Gestionar canales", "Ver reportes"},
	},
	models.ClientWebAdmin: {
		Role:        models.RoleAdmin,
		Description: "Dashboard web para administradores",
		Permissions: []string{"Gestión completa", "Reportes avanzados"},
	},
}

// TokenVerifier is the identity-verification capability. The concrete
// backend can be swapped without touching the query services.
type TokenVerifier interface {
	Verify(ctx context.Context, credential string, clientType models.ClientType) (*models.Principal, error)
}

// identityClaims is the claim set expected from the external identity
// provider's tokens.
type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HMAC-signed bearer tokens. It stands in for the
// hosted identity provider while keeping the same verification contract.
type JWTVerifier struct {
	cfg config.AuthConfig
}

// NewJWTVerifier constructs the verifier.
func NewJWTVerifier(cfg config.AuthConfig) *JWTVerifier {
	return &JWTVerifier{cfg: cfg}
}

// Verify checks the credential and assigns the role for the declared client
// type. Unknown client types verify but receive no role or permissions.
func (v *JWTVerifier) Verify(ctx context.Context, credential string, clientType models.ClientType) (*models.Principal, error) {
	opts := []jwt.ParserOption{jwt.WithLeeway(v.cfg.TokenLeeway)}
	if v.cfg.TokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(v.cfg.TokenIssuer))
	}
	token, err := jwt.ParseWithClaims(credential, &identityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.cfg.TokenSecret), nil
	}, opts...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "Token inválido o expirado")
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Token inválido o expirado")
	}

	principal := &models.Principal{
		UID:         claims.Subject,
		Email:       claims.Email,
		Name:        claims.Name,
		ClientType:  clientType,
		Permissions: []string{},
	}
	if info, known := clientTypeTable[clientType]; known {
		principal.Role = info.Role
		principal.Permissions = info.Permissions
	}
	return principal, nil
}

// AuthService fronts the identity-verification collaborator.
type AuthService struct {
	verifier TokenVerifier
	logger   *zap.Logger
}

// NewAuthService constructs the service.
func NewAuthService(verifier TokenVerifier, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{verifier: verifier, logger: logger}
}

// ClientInfo returns the static description of client types and headers.
func (s *AuthService) ClientInfo() *models.ClientInfoResponse {
	clientTypes := make(map[string]models.ClientTypeInfo, len(clientTypeTable))
	for ct, info := range clientTypeTable {
		clientTypes[string(ct)] = info
	}
	return &models.ClientInfoResponse{
		ClientTypes: clientTypes,
		HeadersRequired: map[string]string{
			"Authorization": "Bearer <firebase_id_token>",
			"X-Client-Type": "ANDROID_STUDENT | DESKTOP_ADMIN | WEB_ADMIN",
		},
		Flow: []string{
			"1. App autentica con el proveedor de identidad",
			"2. App obtiene el idToken",
			"3. App envía idToken + X-Client-Type al backend",
			"4. Backend valida el token y asigna permisos según plataforma",
		},
	}
}

// Me resolves the caller's principal from the raw Authorization and
// X-Client-Type headers.
func (s *AuthService) Me(ctx context.Context, authHeader, clientTypeHeader string) (*models.Principal, error) {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Token requerido: Authorization: Bearer <firebase_token>")
	}
	credential := strings.TrimPrefix(authHeader, "Bearer ")
	clientType := models.ParseClientType(clientTypeHeader)

	principal, err := s.verifier.Verify(ctx, credential, clientType)
	if err != nil {
		s.logger.Debug("token verification failed", zap.Error(err))
		return nil, err
	}
	return principal, nil
}

// Google is the federated sign-in stub.
func (s *AuthService) Google(ctx context.Context) error {
	return appErrors.Clone(appErrors.ErrNotImplemented, "Autenticación federada pendiente de implementación")
}

// Validate is the standalone token-validation stub.
func (s *AuthService) Validate(ctx context.Context) error {
	return appErrors.Clone(appErrors.ErrNotImplemented, "Validación de token pendiente de implementación")
}
