package discovery

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// GenerateDeviceID generates a random device id: six colon-separated hex
// pairs, e.g. "A4:12:F0:3C:55:01". Accessories generate one at first boot
// and keep it for the life of the pairing.
func GenerateDeviceID() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate device id: %w", err)
	}

	parts := make([]string, len(buf))
	for i, b := range buf {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":"), nil
}

// ValidateDeviceID reports whether id is a well-formed device id.
func ValidateDeviceID(id string) bool {
	if len(id) != DeviceIDLength {
		return false
	}
	for i, c := range id {
		// Colons separate the six hex pairs.
		if (i+1)%3 == 0 {
			if c != ':' {
				return false
			}
			continue
		}
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

// NormalizeDeviceID upper-cases a device id for comparison and map keys.
// Announced ids are preserved verbatim; normalize before comparing.
func NormalizeDeviceID(id string) string {
	return strings.ToUpper(id)
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
