package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jomidar/jomidar-api/internal/config"
	"github.com/jomidar/jomidar-api/internal/models"
	"github.com/jomidar/jomidar-api/internal/store"
)

// AuthService handles authentication operations. User accounts live in the
// domain store and are persisted with the rest of the snapshot; refresh
// tokens are held in memory only, so a restart signs everyone out of their
// refresh session but access tokens keep working until expiry.
type AuthService struct {
	store   *store.Store
	flusher *SnapshotFlusher
	cfg     *config.Config

	mu            sync.Mutex
	refreshTokens map[string]refreshToken
}

type refreshToken struct {
	userID    string
	expiresAt time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(st *store.Store, flusher *SnapshotFlusher, cfg *config.Config) *AuthService {
	return &AuthService{
		store:         st,
		flusher:       flusher,
		cfg:           cfg,
		refreshTokens: make(map[string]refreshToken),
	}
}

// LoginResult represents the result of a login attempt
type LoginResult struct {
	Token        string              `json:"token"`
	RefreshToken string              `json:"refresh_token"`
	User         models.UserResponse `json:"user"`
}

// SignUp registers a new user account and signs it in
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*LoginResult, error) {
	if _, exists := s.store.UserByEmail(email); exists {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:                uuid.New().String(),
		Name:              name,
		Email:             email,
		EncryptedPassword: hash,
		CreatedAt:         time.Now(),
	}
	s.store.CreateUser(user)
	s.flusher.FlushAsync()

	return s.issueTokens(&user)
}

// SignIn authenticates a user and returns tokens
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*LoginResult, error) {
	user, exists := s.store.UserByEmail(email)
	if !exists {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.EncryptedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(&user)
}

// Refresh validates a refresh token and returns a new token pair. The old
// refresh token is invalidated (rotation).
func (s *AuthService) Refresh(ctx context.Context, token string) (*LoginResult, error) {
	s.mu.Lock()
	rt, ok := s.refreshTokens[token]
	if ok {
		delete(s.refreshTokens, token)
	}
	s.mu.Unlock()

	if !ok || time.Now().After(rt.expiresAt) {
		return nil, ErrInvalidToken
	}

	user, exists := s.store.UserByID(rt.userID)
	if !exists {
		return nil, ErrInvalidToken
	}

	return s.issueTokens(&user)
}

// SignOut invalidates a refresh token
func (s *AuthService) SignOut(ctx context.Context, token string) {
	s.mu.Lock()
	delete(s.refreshTokens, token)
	s.mu.Unlock()
}

// Me returns the account behind a user id
func (s *AuthService) Me(userID string) (models.UserResponse, error) {
	user, exists := s.store.UserByID(userID)
	if !exists {
		return models.UserResponse{}, ErrNotFound
	}
	return user.ToResponse(), nil
}

func (s *AuthService) issueTokens(user *models.User) (*LoginResult, error) {
	token, err := s.generateJWT(user)
	if err != nil {
		return nil, err
	}

	refresh, err := s.generateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:        token,
		RefreshToken: refresh,
		User:         user.ToResponse(),
	}, nil
}

// generateJWT creates a new JWT token for a user
func (s *AuthService) generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// generateRefreshToken creates a new refresh token (30 day expiry)
func (s *AuthService) generateRefreshToken(userID string) (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	token := hex.EncodeToString(bytes)

	s.mu.Lock()
	s.refreshTokens[token] = refreshToken{
		userID:    userID,
		expiresAt: time.Now().Add(30 * 24 * time.Hour),
	}
	s.mu.Unlock()

	return token, nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword compares a password with a hash
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
