package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// ValidateColumnName validates a column label supplied by a user.
//
// The rules are deliberately loose since catalog labels are arbitrary
// strings: the name must be non-empty, at most 128 characters, and free
// of control characters.
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "column name cannot be empty")
	}

	const maxLength = 128
	if len(name) > maxLength {
		return New(ErrCodeInvalidInput, "column name too long (max %d characters)", maxLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "column name contains invalid control characters")
		}
	}
	return nil
}

// ValidateURL validates a catalog URL.
// It ensures the URL parses and has a safe scheme (http or https) and a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL %q has no host", rawURL)
	}
	return nil
}
