package billing

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"fulfillment/internal/pkg/errs"
)

const (
	// referencePrefix opens every billing reference.
	referencePrefix = "ADD"
	// referenceSuffixLength is the number of random alphanumeric characters
	// appended after the date part.
	referenceSuffixLength = 4
	// referenceAlphabet is the character set for the random suffix.
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// referencePattern matches "ADD" + YYMMDD + 4 alphanumerics.
var referencePattern = regexp.MustCompile(`^ADD\d{6}[A-Z0-9]{4}$`)

// GenerateReference produces a candidate billing reference for the given day:
// "ADD" + YYMMDD + a 4-character random alphanumeric suffix.
//
// References must be globally unique; callers regenerate on collision with the
// persistence uniqueness constraint as the final safety net.
func GenerateReference(now time.Time) string {
	suffix := make([]byte, referenceSuffixLength)
	for i := range suffix {
		suffix[i] = referenceAlphabet[rand.IntN(len(referenceAlphabet))]
	}
	return fmt.Sprintf("%s%s%s", referencePrefix, now.Format("060102"), suffix)
}

// ValidateReference checks that a reference matches the persisted layout.
func ValidateReference(reference string) error {
	if !referencePattern.MatchString(reference) {
		return errs.NewValueIsInvalidError("billing reference")
	}
	return nil
}
