package services

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trs-service/internal/apperrors"
	"trs-service/internal/models"
	"trs-service/internal/repository"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthService registers users and issues signed access tokens.
type AuthService struct {
	users         *repository.UserRepository
	secretKey     string
	jwtExpiration time.Duration
}

func NewAuthService(users *repository.UserRepository, secretKey string, jwtExpirationSeconds int) *AuthService {
	return &AuthService{
		users:         users,
		secretKey:     secretKey,
		jwtExpiration: time.Duration(jwtExpirationSeconds) * time.Second,
	}
}

// Register validates the registration payload and stores a new user with a
// bcrypt password hash.
func (s *AuthService) Register(req models.RegisterRequest) error {
	if req.Username == "" {
		return apperrors.Validation("Username is required")
	}
	if req.Email == "" {
		return apperrors.Validation("Email is required")
	}
	if !emailRegex.MatchString(req.Email) {
		return apperrors.Validation("Invalid email")
	}
	if req.Password == "" {
		return apperrors.Validation("Password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hashing password")
	}

	user := &models.User{Username: req.Username, Email: req.Email, Password: string(hash)}
	if err := s.users.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict(fmt.Sprintf(
				"Either user %q or email %q is already registered.", req.Username, req.Email))
		}
		return errors.Wrap(err, "creating user")
	}
	return nil
}

// Login checks the credentials and returns a signed HS256 token whose
// subject is the user's ID.
func (s *AuthService) Login(req models.LoginRequest) (string, error) {
	user, err := s.users.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.Auth("Incorrect username")
		}
		return "", errors.Wrap(err, "loading user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", apperrors.Auth("Incorrect password")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return signed, nil
}
