package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/shared"
	log "github.com/sirupsen/logrus"
)

// GoogleVerifier resolves a Google ID token to its stable subject.
type GoogleVerifier interface {
	Verify(idToken string) (string, error)
}

// AuthService exchanges client identities for signed user tokens.
type AuthService struct {
	context.DefaultService

	sqlSvc *SqlService
	jwtSvc *JWTService

	google GoogleVerifier
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQL_SVC).(*SqlService)
	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	if svc.google == nil {
		svc.google = &googleTokenInfoVerifier{
			httpClient: &http.Client{Timeout: 10 * time.Second},
		}
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	return nil
}

// Login resolves the caller to a user record, creating it on first contact,
// and returns a fresh token. Banned users get no token.
func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	clientID, err := svc.resolveClientID(req)
	if err != nil {
		return nil, err
	}

	user, err := svc.sqlSvc.Users().GetOrCreateUser(clientID)
	if err != nil {
		return nil, err
	}
	if user.ClientType == shared.ClientTypeBanned {
		log.WithField("user_id", user.ID).Warn("Banned user attempted login")
		return nil, shared.NewPermissionDeniedError()
	}

	token, err := svc.jwtSvc.IssueUserToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		UserToken:  token,
		ClientType: user.ClientType,
	}, nil
}

func (svc *AuthService) resolveClientID(req dto.LoginRequest) (string, error) {
	if req.GoogleIDToken != "" {
		sub, err := svc.google.Verify(req.GoogleIDToken)
		if err != nil {
			log.WithError(err).Warn("Google ID token rejected")
			return "", shared.NewInvalidSignatureError()
		}
		return "google." + sub, nil
	}
	if req.ClientID != "" {
		return req.ClientID, nil
	}
	return "", shared.NewInvalidCombinationError("must provide 'google_id_token' or 'client_id'")
}

// googleTokenInfoVerifier checks ID tokens against Google's tokeninfo
// endpoint.
type googleTokenInfoVerifier struct {
	httpClient *http.Client
}

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

func (g *googleTokenInfoVerifier) Verify(idToken string) (string, error) {
	resp, err := g.httpClient.Get(googleTokenInfoURL + "?id_token=" + url.QueryEscape(idToken))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tokeninfo returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var info struct {
		Sub string `json:"sub"`
	}
	if err := sonic.Unmarshal(body, &info); err != nil {
		return "", err
	}
	if info.Sub == "" {
		return "", fmt.Errorf("tokeninfo response missing subject")
	}
	return info.Sub, nil
}
