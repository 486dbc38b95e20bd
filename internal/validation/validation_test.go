package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"simple address", "alice@example.com", true},
		{"dotted local part", "first.last@example.com", true},
		{"subdomain", "user@mail.example.org", true},
		{"missing at sign", "alice.example.com", false},
		{"missing domain", "alice@", false},
		{"missing tld", "alice@example", false},
		{"spaces", "alice smith@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateEmail(tt.email))
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"minimum length", "abc", true},
		{"maximum length", "abcdefghijklmnopqrst", true},
		{"too short", "ab", false},
		{"too long", "abcdefghijklmnopqrstu", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateUsername(tt.username))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("secret1"))
	assert.True(t, ValidatePassword("123456"))
	assert.False(t, ValidatePassword("12345"))
	assert.False(t, ValidatePassword(""))
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips angle brackets", "<script>alert('x')</script>", "scriptalert('x')/script"},
		{"trims whitespace", "  hello world  ", "hello world"},
		{"trims then strips", " <b>bold</b> ", "bbold/b"},
		{"plain text untouched", "plain text", "plain text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeInput(tt.input))
		})
	}
}

func TestValidatePostData(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		content    string
		wantFields []string
	}{
		{"valid", "A title", "Content long enough", nil},
		{"short title", "ab", "Content long enough", []string{"title"}},
		{"short content", "A title", "too short", []string{"content"}},
		{"both invalid", "", "", []string{"title", "content"}},
		{"whitespace only title", "    ", "Content long enough", []string{"title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePostData(tt.title, tt.content)
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}
