package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type fakeGoogleVerifier struct {
	sub string
	err error
}

func (f *fakeGoogleVerifier) Verify(string) (string, error) {
	return f.sub, f.err
}

func newTestAuthService(t *testing.T, db *gorm.DB, google GoogleVerifier) *AuthService {
	t.Helper()
	sqlSvc := &SqlService{db: db}
	sqlSvc.bindRepositories(db)
	return &AuthService{
		sqlSvc: sqlSvc,
		jwtSvc: newTestJWTService("test-secret"),
		google: google,
	}
}

func TestLoginWithClientID(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(t, db, &fakeGoogleVerifier{})

	resp, err := svc.Login(dto.LoginRequest{ClientID: "prolific.abc"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.UserToken)
	require.Equal(t, shared.ClientTypeNormal, resp.ClientType)

	var user model.User
	require.NoError(t, db.Where("client_id = ?", "prolific.abc").First(&user).Error)

	// the same client comes back as the same user
	again, err := svc.Login(dto.LoginRequest{ClientID: "prolific.abc"})
	require.NoError(t, err)
	claims, err := svc.jwtSvc.VerifyUserToken(again.UserToken, false)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
}

func TestLoginWithGoogleToken(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(t, db, &fakeGoogleVerifier{sub: "123456"})

	resp, err := svc.Login(dto.LoginRequest{GoogleIDToken: "whatever"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.UserToken)

	var user model.User
	require.NoError(t, db.Where("client_id = ?", "google.123456").First(&user).Error)
}

func TestLoginGoogleTokenRejected(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(t, db, &fakeGoogleVerifier{err: errors.New("bad token")})

	_, err := svc.Login(dto.LoginRequest{GoogleIDToken: "whatever"})
	require.True(t, shared.IsKind(err, shared.KindInvalidSignature))
}

func TestLoginWithoutCredentials(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(t, db, &fakeGoogleVerifier{})

	_, err := svc.Login(dto.LoginRequest{})
	require.True(t, shared.IsKind(err, shared.KindInvalidCombination))
}

func TestLoginBannedUser(t *testing.T) {
	db := openTestDB(t)
	svc := newTestAuthService(t, db, &fakeGoogleVerifier{})

	banned := &model.User{ClientID: "troll", ClientType: shared.ClientTypeBanned, CreatedAt: time.Now()}
	require.NoError(t, db.Create(banned).Error)

	_, err := svc.Login(dto.LoginRequest{ClientID: "troll"})
	require.True(t, shared.IsKind(err, shared.KindPermissionDenied))
}
