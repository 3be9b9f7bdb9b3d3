package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/careercompass/backend/config"
)

// TokenValidator checks a Google ID token against an audience
type TokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleAuthService handles Google sign-in verification
type GoogleAuthService struct {
	clientID string
	validate TokenValidator
}

// ErrGoogleNotConfigured is returned when no Google client ID is set
var ErrGoogleNotConfigured = errors.New("google sign-in is not configured")

// GoogleUserInfo represents user info from Google token
type GoogleUserInfo struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// NewGoogleAuthService creates a new Google auth service
func NewGoogleAuthService(cfg *config.Config) *GoogleAuthService {
	return &GoogleAuthService{
		clientID: cfg.GoogleClientID,
		validate: idtoken.Validate,
	}
}

// NewGoogleAuthServiceWithValidator is NewGoogleAuthService with a custom
// token validator
func NewGoogleAuthServiceWithValidator(clientID string, validate TokenValidator) *GoogleAuthService {
	return &GoogleAuthService{clientID: clientID, validate: validate}
}

// Enabled reports whether Google sign-in is configured
func (s *GoogleAuthService) Enabled() bool {
	return s != nil && s.clientID != ""
}

// VerifyIDToken verifies a Google ID token and returns user info
func (s *GoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error) {
	if !s.Enabled() {
		return nil, ErrGoogleNotConfigured
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	// Extract user info from payload
	userInfo := &GoogleUserInfo{
		GoogleID: payload.Subject,
	}

	if email, ok := payload.Claims["email"].(string); ok {
		userInfo.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		userInfo.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		userInfo.Picture = picture
	}

	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("email not verified")
	}

	if userInfo.Email == "" {
		return nil, errors.New("email not found in token")
	}

	return userInfo, nil
}
