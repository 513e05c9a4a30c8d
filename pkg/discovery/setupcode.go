package discovery

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Setup code constants.
const (
	// SetupCodeDigits is the number of digits in a setup code.
	SetupCodeDigits = 8

	// SetupCodeMax is the maximum setup code value (99999999).
	SetupCodeMax = 99999999
)

// SetupCode is an 8-digit HAP setup code, displayed as XXX-XX-XXX.
type SetupCode uint32

// invalidSetupCodes lists the codes HAP disallows for pairing because they
// are trivially guessable.
var invalidSetupCodes = map[SetupCode]bool{
	0:        true, // 000-00-000
	11111111: true,
	22222222: true,
	33333333: true,
	44444444: true,
	55555555: true,
	66666666: true,
	77777777: true,
	88888888: true,
	99999999: true,
	12345678: true,
	87654321: true,
}

// GenerateSetupCode generates a cryptographically random setup code,
// redrawing until it finds one that is not on the disallowed list.
func GenerateSetupCode() (SetupCode, error) {
	max := big.NewInt(SetupCodeMax + 1)
	for {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return 0, fmt.Errorf("failed to generate random setup code: %w", err)
		}
		code := SetupCode(n.Uint64())
		if invalidSetupCodes[code] {
			continue
		}
		return code, nil
	}
}

// ParseSetupCode parses a setup code in either the displayed XXX-XX-XXX form
// or as a bare 8-digit string. Only the format is checked; use Validate to
// also reject disallowed codes.
func ParseSetupCode(s string) (SetupCode, error) {
	s = strings.TrimSpace(s)

	digits := s
	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		if len(parts) != 3 || len(parts[0]) != 3 || len(parts[1]) != 2 || len(parts[2]) != 3 {
			return 0, fmt.Errorf("%w: expected XXX-XX-XXX", ErrInvalidSetupCode)
		}
		digits = parts[0] + parts[1] + parts[2]
	}

	if len(digits) != SetupCodeDigits {
		return 0, fmt.Errorf("%w: must be %d digits", ErrInvalidSetupCode, SetupCodeDigits)
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSetupCode, err)
	}

	return SetupCode(n), nil
}

// String returns the setup code in the displayed XXX-XX-XXX form.
func (sc SetupCode) String() string {
	d := fmt.Sprintf("%08d", uint32(sc))
	return d[0:3] + "-" + d[3:5] + "-" + d[5:8]
}

// Digits returns the setup code as a bare 8-digit string with leading zeros.
func (sc SetupCode) Digits() string {
	return fmt.Sprintf("%08d", uint32(sc))
}

// Validate checks that the code is in range and not on the disallowed list.
func (sc SetupCode) Validate() error {
	if sc > SetupCodeMax {
		return fmt.Errorf("%w: exceeds maximum value", ErrInvalidSetupCode)
	}
	if invalidSetupCodes[sc] {
		return fmt.Errorf("%w: %s is disallowed for pairing", ErrInvalidSetupCode, sc)
	}
	return nil
}

// MustParseSetupCode parses a setup code string and panics on error.
// Use only in tests or when the code is known to be valid.
func MustParseSetupCode(s string) SetupCode {
	sc, err := ParseSetupCode(s)
	if err != nil {
		panic(err)
	}
	return sc
}
