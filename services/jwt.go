package services

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
)

// JWTService issues and verifies the user tokens carried in request bodies.
type JWTService struct {
	context.DefaultService

	TokenDuration time.Duration
	jwtSecretKey  string
	issuer        string
	now           func() time.Time
}

// UserClaims is the payload of every user token.
type UserClaims struct {
	UserID     int `json:"user_id"`
	ClientType int `json:"client_type"`
	jwt.RegisteredClaims
}

const JWT_SVC = "jwt_svc"

const tokenIssuer = "api.periscope.io.tudelft.nl"

func (svc JWTService) Id() string {
	return JWT_SVC
}

func (svc *JWTService) Configure(ctx *context.Context) error {
	svc.TokenDuration = 30 * 24 * time.Hour
	svc.jwtSecretKey = os.Getenv("JWT_SECRET")
	svc.issuer = tokenIssuer
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *JWTService) Start() error {
	if svc.jwtSecretKey == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}

// IssueUserToken signs a token carrying the user's identity and role. Tokens
// are valid for 30 days from issuance.
func (svc *JWTService) IssueUserToken(user *model.User) (string, error) {
	issuedAt := svc.now()

	jti := uuid.New()
	claims := &UserClaims{
		UserID:     user.ID,
		ClientType: user.ClientType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        hex.EncodeToString(jti[:]),
			Issuer:    svc.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(svc.TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(svc.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return tokenString, nil
}

// VerifyUserToken parses and checks a user token. With requireAdmin set, a
// valid token of a non-admin user is rejected.
func (svc *JWTService) VerifyUserToken(jwtToken string, requireAdmin bool) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(jwtToken, &UserClaims{}, svc.getJWTKey,
		jwt.WithTimeFunc(func() time.Time { return svc.now() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, shared.NewExpiredTokenError()
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, shared.NewInvalidSignatureError()
		default:
			return nil, shared.NewMalformedTokenError()
		}
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, shared.NewMalformedTokenError()
	}
	if requireAdmin && claims.ClientType != shared.ClientTypeAdmin {
		return nil, shared.NewPermissionDeniedError()
	}
	return claims, nil
}

// Authenticate verifies a token and returns the identity it carries.
func (svc *JWTService) Authenticate(token string, requireAdmin bool) (int, int, error) {
	claims, err := svc.VerifyUserToken(token, requireAdmin)
	if err != nil {
		return 0, 0, err
	}
	return claims.UserID, claims.ClientType, nil
}

func (svc *JWTService) getJWTKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(svc.jwtSecretKey), nil
}
