package api

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitgenius/internal/models"
)

const (
	minPasswordLength     = 8
	recoveryAttemptLimit  = 5
	recoveryAttemptWindow = 15 * time.Minute
)

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type forgotPasswordInput struct {
	Email        string `json:"email"`
	RecoveryCode string `json:"recovery_code"`
	NewPassword  string `json:"new_password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Register creates the account and returns the one-time recovery code. The
// code is shown exactly once; only its bcrypt hash is stored.
func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email := normalizeEmail(input.Email)
	if email == "" {
		return apiError(c, fiber.StatusBadRequest, "valid email is required")
	}
	if len(input.Password) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters")
	}

	if _, err := handler.repositories.Users.FindByNormalizedEmail(email); err == nil {
		return apiError(c, fiber.StatusConflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusInternalServerError, "failed to check email")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	recoveryCode, recoveryHash, err := generateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate recovery code")
	}

	user := models.User{
		Email:            email,
		PasswordHash:     string(passwordHash),
		RecoveryCodeHash: recoveryHash,
		Gender:           models.GenderOther,
		ActivityLevel:    models.ActivityModerate,
		Goal:             models.GoalMaintain,
		HouseholdSize:    1,
		CreatedAt:        time.Now(),
	}
	if err := handler.repositories.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, &user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to start session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user_id":       user.ID,
		"email":         user.Email,
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := handler.repositories.Users.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to start session")
	}

	return c.JSON(fiber.Map{
		"user_id":              user.ID,
		"email":                user.Email,
		"onboarding_complete":  user.OnboardingComplete,
		"must_change_password": user.MustChangePassword,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// ForgotPassword resets the password with the one-time recovery code, then
// rotates the code so the old one cannot be replayed. Attempts are limited
// per client IP.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	var input forgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.recoveryLimiter.tooManyRecent(limiterKey, now, recoveryAttemptLimit, recoveryAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts, try again later")
	}

	if len(input.NewPassword) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters")
	}

	code := normalizeRecoveryCode(input.RecoveryCode)
	user, err := handler.findUserByRecoveryCode(code)
	if err != nil {
		handler.recoveryLimiter.addFailure(limiterKey, now, recoveryAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
	}

	if email := normalizeEmail(input.Email); email != "" && email != strings.ToLower(user.Email) {
		handler.recoveryLimiter.addFailure(limiterKey, now, recoveryAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to hash password")
	}
	if err := handler.repositories.Users.UpdatePassword(user.ID, string(passwordHash), false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	newCode, newHash, err := generateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to rotate recovery code")
	}
	if err := handler.repositories.Users.UpdateRecoveryCodeHash(user.ID, newHash); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to rotate recovery code")
	}

	handler.recoveryLimiter.reset(limiterKey)
	return c.JSON(fiber.Map{"ok": true, "recovery_code": newCode})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user := currentUser(c)

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(input.NewPassword) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "current password is incorrect")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to hash password")
	}
	if err := handler.repositories.Users.UpdatePassword(user.ID, string(passwordHash), false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := handler.repositories.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func normalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}
