package handler

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"pingo/backend/internal/api/middleware"
	"pingo/backend/internal/auth"
	"pingo/backend/internal/models"
	"pingo/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type signupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates an account, sets the session cookie, and queues the welcome
// email.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	password := strings.TrimSpace(req.Password)
	if req.FullName == "" || req.Email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}
	if len(password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters"})
		return
	}
	if !emailRe.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter a valid email address"})
		return
	}

	if _, err := h.Storage.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := h.Storage.CreateUser(user); err != nil {
		log.Printf("ERROR: Signup failed for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if err := h.setSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if err := h.Mailer.SendWelcome(user.Email, user.FullName); err != nil {
		log.Printf("WARNING: Welcome email failed for %s: %v", user.Email, err)
	}

	c.JSON(http.StatusCreated, user.Profile())
}

// Login verifies the credentials and sets the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	user, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil {
		// Same response for unknown email and wrong password.
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	if err := h.setSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, user.Profile())
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	auth.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Check returns the authenticated user, archived set included, for session
// restoration on page load.
func (h *Handler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

type updateProfileRequest struct {
	ProfilePic string `json:"profilePic"`
}

// UpdateProfile replaces the user's profile image.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProfilePic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Profile pic is required"})
		return
	}

	ref, err := h.Uploader.Upload(req.ProfilePic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed"})
		return
	}

	user := middleware.CurrentUser(c)
	updated, err := h.Storage.UpdateProfilePic(user.ID, ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, updated.Profile())
}

func (h *Handler) setSession(c *gin.Context, userID uint) error {
	token, err := auth.GenerateToken(userID, []byte(h.Cfg.JWTSecret))
	if err != nil {
		log.Printf("ERROR: Token generation failed for user %d: %v", userID, err)
		return err
	}
	auth.SetAuthCookie(c, token, h.Cfg.Production())
	return nil
}
