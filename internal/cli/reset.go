package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitgenius/internal/db"
	"fitgenius/internal/security"
)

// RunResetPasswordCommand issues a temporary password for the account and
// forces a change on the next login.
func RunResetPasswordCommand(dbPath string, email string) error {
	database, user, err := loadUserByEmail(dbPath, email)
	if err != nil {
		return err
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	if err := db.NewUserRepository(database).UpdatePassword(user, string(passwordHash), true); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("User must change password on next login.")

	return nil
}

// RunSetPasswordCommand prompts for a new password without echoing it and
// sets it directly, leaving no forced change flag.
func RunSetPasswordCommand(dbPath string, email string) error {
	database, user, err := loadUserByEmail(dbPath, email)
	if err != nil {
		return err
	}

	fmt.Print("New password: ")
	password, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	fmt.Print("Confirm password: ")
	confirmation, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if string(password) != string(confirmation) {
		return errors.New("passwords do not match")
	}

	passwordHash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := db.NewUserRepository(database).UpdatePassword(user, string(passwordHash), false); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password updated")
	return nil
}

func loadUserByEmail(dbPath string, email string) (*gorm.DB, uint, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return nil, 0, errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return nil, 0, fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, 0, fmt.Errorf("database init failed: %w", err)
	}

	user, err := db.NewUserRepository(database).FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fmt.Errorf("user %s not found", normalizedEmail)
		}
		return nil, 0, fmt.Errorf("load user: %w", err)
	}

	return database, user.ID, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
