package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careercompass/backend/auth"
	"github.com/careercompass/backend/models"
	"github.com/careercompass/backend/storage"
)

// Account providers
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	users      storage.UserStore
	jwtService *auth.JWTService
	googleAuth *auth.GoogleAuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	users storage.UserStore,
	jwtService *auth.JWTService,
	googleAuth *auth.GoogleAuthService,
) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		googleAuth: googleAuth,
	}
}

// Register handles user registration with email/password
// @Summary Register a new user
// @Description Register a new user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 503 {object} models.ErrorResponse "Storage unavailable"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to process registration", "")
		return
	}

	user := &models.User{
		Email:    models.NormalizeEmail(req.Email),
		Name:     req.Name,
		Password: hashedPassword,
		Provider: ProviderEmail,
	}

	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respondError(c, http.StatusConflict, "Registration failed", "user with this email already exists")
			return
		}
		log.Printf("[AuthHandler] Failed to create user: %v", err)
		respondStoreError(c, err, "")
		return
	}

	h.issueToken(c, http.StatusCreated, user, "Registration successful")
}

// Login handles user login with email/password
// @Summary Login user
// @Description Login with email and password to get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 503 {object} models.ErrorResponse "Storage unavailable"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		log.Printf("[AuthHandler] Failed to load user: %v", err)
		respondStoreError(c, err, "")
		return
	}

	if user.Provider == ProviderGoogle && user.Password == "" {
		respondError(c, http.StatusUnauthorized, "This account uses Google Sign-In. Please login with Google.", "")
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid email or password", "")
		return
	}

	h.touchLogin(c, user)
	h.issueToken(c, http.StatusOK, user, "Login successful")
}

// GoogleLogin handles Google sign-in
// @Summary Login with Google
// @Description Login or register using a Google ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Failure 503 {object} models.ErrorResponse "Google sign-in or storage unavailable"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	googleUser, err := h.googleAuth.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrGoogleNotConfigured) {
			respondError(c, http.StatusServiceUnavailable, "Google sign-in is not configured", "")
			return
		}
		log.Printf("[AuthHandler] Failed to verify Google token: %v", err)
		respondError(c, http.StatusUnauthorized, "Invalid Google token", err.Error())
		return
	}

	user, err := h.users.GetUserByEmail(ctx, googleUser.Email)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		user = &models.User{
			Email:    models.NormalizeEmail(googleUser.Email),
			Name:     googleUser.Name,
			Provider: ProviderGoogle,
			GoogleID: googleUser.GoogleID,
		}
		if err := h.users.CreateUser(ctx, user); err != nil {
			log.Printf("[AuthHandler] Failed to create Google user: %v", err)
			respondStoreError(c, err, "")
			return
		}
		log.Printf("[AuthHandler] New Google user created: %s", user.Email)
	case err != nil:
		log.Printf("[AuthHandler] Failed to load user: %v", err)
		respondStoreError(c, err, "")
		return
	case user.GoogleID == "":
		// Link an existing email account to Google on first Google login.
		user.GoogleID = googleUser.GoogleID
		if err := h.users.UpdateUser(ctx, user.ID, storage.UserUpdate{GoogleID: googleUser.GoogleID}); err != nil {
			log.Printf("[AuthHandler] Failed to link Google account for %s: %v", user.Email, err)
		}
	}

	h.touchLogin(c, user)
	h.issueToken(c, http.StatusOK, user, "Login successful")
}

// Me returns the current user's profile
// @Summary Get current user
// @Description Get the authenticated user's profile information
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		respondStoreError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		Success: true,
		User:    user,
	})
}

func (h *AuthHandler) touchLogin(c *gin.Context, user *models.User) {
	user.LastLogin = time.Now()
	if err := h.users.UpdateUser(c.Request.Context(), user.ID, storage.UserUpdate{LastLogin: user.LastLogin}); err != nil {
		log.Printf("[AuthHandler] Failed to record login for %s: %v", user.Email, err)
	}
}

func (h *AuthHandler) issueToken(c *gin.Context, status int, user *models.User, message string) {
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate token", "")
		return
	}

	log.Printf("[AuthHandler] %s: %s", message, user.Email)
	c.JSON(status, models.AuthResponse{
		Success: true,
		Token:   token,
		User:    user,
		Message: message,
	})
}
