package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/model"
	"droscher.com/BreweryDB/pkg/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

type UserKey struct{}

type Manager struct {
	conf   *configs.Config
	repo   repository.UserRepository
	logger *zap.Logger
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewAuthManager(conf *configs.Config, repo repository.UserRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Login checks the password of the user with the given email and issues a signed token.
func (a *Manager) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := a.repo.GetUserFromEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Warn("failed login", zap.String("email", email))

		return nil, ErrInvalidCredentials
	}

	return a.IssueToken(user)
}

func (a *Manager) IssueToken(user *model.User) (*LoginResponse, error) {
	issuedAt := time.Now()
	expiresAt := issuedAt.Add(time.Duration(a.conf.Auth.TokenTTLHours) * time.Hour)

	claims := jwt.MapClaims{
		"email": user.Email,
		"sub":   user.UUID.String(),
		"iat":   issuedAt.Unix(),
		"exp":   expiresAt.Unix(),
	}

	if len(a.conf.Auth.Audience) > 0 {
		claims["aud"] = a.conf.Auth.Audience
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.conf.Auth.SecretKey))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: signed, ExpiresAt: expiresAt.UTC()}, nil
}

func (a *Manager) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var request LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")

		return
	}

	response, err := a.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, err.Error())

			return
		}

		a.logger.Error("error logging in", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal error")

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// Middleware rejects requests without a valid bearer token and stores the user in the request context.
func (a *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.authenticate(r)
		if err != nil {
			if errors.Is(err, ErrUnauthenticated) {
				writeMessage(w, http.StatusUnauthorized, err.Error())

				return
			}

			a.logger.Error("error authenticating user", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "error authenticating user")

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserKey{}, user)))
	})
}

func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey{}).(*model.User)

	return user
}

func (a *Manager) authenticate(r *http.Request) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrUnauthenticated, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(r.Header)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Warn("error parsing token", zap.Error(err))

		return nil, fmt.Errorf("%w: error parsing token", ErrUnauthenticated)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	if len(a.conf.Auth.Audience) > 0 && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		return nil, fmt.Errorf("%w: invalid audience", ErrUnauthenticated)
	}

	email, found := claims["email"].(string)
	if !found {
		a.logger.Warn("unable to get user id from token", zap.Any("claims", claims))

		return nil, fmt.Errorf("%w: unable to get user id from token", ErrUnauthenticated)
	}

	user, err := a.repo.GetUserFromEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrUnauthenticated)
		}

		return nil, err
	}

	return user, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return nil, fmt.Errorf("%w: authorization header not found", ErrUnauthenticated)
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, fmt.Errorf("%w: authorization format must be Bearer {token}", ErrUnauthenticated)
	}

	return &token, nil
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
