package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"trs-service/internal/apperrors"
	"trs-service/internal/models"
	"trs-service/internal/repository"
)

const testSecret = "test-secret"

type AuthServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewAuthService(repository.NewUserRepository(s.db), testSecret, 3600)
}

func (s *AuthServiceTestSuite) register(username, email, password string) error {
	return s.svc.Register(models.RegisterRequest{Username: username, Email: email, Password: password})
}

func (s *AuthServiceTestSuite) TestRegisterAndLogin() {
	require.NoError(s.T(), s.register("alice", "alice@example.com", "hunter2"))

	token, err := s.svc.Login(models.LoginRequest{Username: "alice", Password: "hunter2"})
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), token)

	// The token is a valid HS256 JWT whose subject is the user's ID.
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(s.T(), err)
	assert.True(s.T(), parsed.Valid)
	assert.Equal(s.T(), "1", claims.Subject)
	assert.NotNil(s.T(), claims.IssuedAt)
	assert.NotNil(s.T(), claims.ExpiresAt)
	assert.NotEmpty(s.T(), claims.ID)
	assert.True(s.T(), claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func (s *AuthServiceTestSuite) TestRegisterValidation() {
	cases := []struct {
		name     string
		username string
		email    string
		password string
		message  string
	}{
		{"missing username", "", "a@example.com", "pw", "Username is required"},
		{"missing email", "a", "", "pw", "Email is required"},
		{"malformed email", "a", "not-an-email", "pw", "Invalid email"},
		{"missing password", "a", "a@example.com", "", "Password is required"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			err := s.register(tc.username, tc.email, tc.password)
			requireAppError(s.T(), err, apperrors.KindValidation, tc.message)
		})
	}
}

func (s *AuthServiceTestSuite) TestRegisterDuplicate() {
	require.NoError(s.T(), s.register("alice", "alice@example.com", "pw"))

	err := s.register("alice", "other@example.com", "pw")
	requireAppError(s.T(), err, apperrors.KindConflict,
		`Either user "alice" or email "other@example.com" is already registered.`)

	err = s.register("other", "alice@example.com", "pw")
	requireAppError(s.T(), err, apperrors.KindConflict,
		`Either user "other" or email "alice@example.com" is already registered.`)
}

func (s *AuthServiceTestSuite) TestLoginIncorrectCredentials() {
	require.NoError(s.T(), s.register("alice", "alice@example.com", "hunter2"))

	_, err := s.svc.Login(models.LoginRequest{Username: "nobody", Password: "hunter2"})
	requireAppError(s.T(), err, apperrors.KindAuth, "Incorrect username")

	_, err = s.svc.Login(models.LoginRequest{Username: "alice", Password: "wrong"})
	requireAppError(s.T(), err, apperrors.KindAuth, "Incorrect password")
}

func (s *AuthServiceTestSuite) TestPasswordsAreStoredHashed() {
	require.NoError(s.T(), s.register("alice", "alice@example.com", "hunter2"))

	var user models.User
	require.NoError(s.T(), s.db.First(&user, "username = ?", "alice").Error)
	assert.NotEqual(s.T(), "hunter2", user.Password)
	assert.NotEmpty(s.T(), user.Password)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
