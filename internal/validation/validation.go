// Package validation holds the pure input checks shared by the auth and
// post services. All functions are side-effect free.
package validation

import (
	"regexp"
	"strings"
)

const (
	// UsernameMinLen and UsernameMaxLen bound acceptable usernames.
	UsernameMinLen = 3
	UsernameMaxLen = 20
	// PasswordMinLen is the minimum accepted password length.
	PasswordMinLen = 6
	// TitleMinLen and ContentMinLen bound post fields after trimming.
	TitleMinLen   = 3
	ContentMinLen = 10
)

var emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// ValidateEmail reports whether email matches the local@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateUsername reports whether username is within length bounds.
func ValidateUsername(username string) bool {
	return len(username) >= UsernameMinLen && len(username) <= UsernameMaxLen
}

// ValidatePassword reports whether password meets the minimum length.
func ValidatePassword(password string) bool {
	return len(password) >= PasswordMinLen
}

// SanitizeInput trims whitespace and strips angle brackets from free-text
// input before it reaches storage.
func SanitizeInput(input string) string {
	trimmed := strings.TrimSpace(input)
	return strings.NewReplacer("<", "", ">", "").Replace(trimmed)
}

// ValidatePostData checks post title and content, returning a per-field
// error map. An empty map means the data is valid.
func ValidatePostData(title, content string) map[string]string {
	errs := make(map[string]string)

	if len(strings.TrimSpace(title)) < TitleMinLen {
		errs["title"] = "Title must be at least 3 characters long"
	}
	if len(strings.TrimSpace(content)) < ContentMinLen {
		errs["content"] = "Content must be at least 10 characters long"
	}

	return errs
}
