package cli

import (
	"strings"
	"testing"
)

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want 8", len(password))
	}
}

func TestGenerateTemporaryPasswordAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	password, err := generateTemporaryPassword(24)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 24 {
		t.Fatalf("generateTemporaryPassword len = %d, want 24", len(password))
	}

	for _, char := range password {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
}

func TestLoadUserByEmailValidation(t *testing.T) {
	t.Parallel()

	if _, _, err := loadUserByEmail("unused.db", "   "); err == nil {
		t.Fatal("expected error for blank email")
	}
	if _, _, err := loadUserByEmail("unused.db", "not-an-email"); err == nil {
		t.Fatal("expected error for malformed email")
	}
}

func TestResetPasswordForMissingUser(t *testing.T) {
	t.Parallel()

	dbPath := t.TempDir() + "/fitgenius.db"
	err := RunResetPasswordCommand(dbPath, "nobody@example.com")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
