// Package password evaluates candidate passwords against fixed
// strength policies and generates compliant random passwords.
// All checks are pure; the only side effect anywhere in the package
// is reading crypto/rand during generation.
package password

// Policy names a fixed rule set for password acceptability.
type Policy int

const (
	// Default is the relaxed policy satisfied by generated passwords:
	// at most MaxDefaultLength characters, alphanumeric only, with at
	// least one uppercase letter, one lowercase letter and one digit.
	Default Policy = iota

	// Strong is the policy enforced for user-chosen passwords: at
	// least MinStrongLength characters, alphanumeric only, upper,
	// lower and digit present, a run of at least LetterRun letters,
	// and no case-insensitive occurrence of the username.
	Strong
)

const (
	// MinStrongLength is the minimum length under Strong.
	MinStrongLength = 8

	// MaxDefaultLength is the maximum length under Default.
	MaxDefaultLength = 15

	// LetterRun is the consecutive-letter run Strong requires.
	LetterRun = 4
)

func (p Policy) String() string {
	switch p {
	case Default:
		return "default"
	case Strong:
		return "strong"
	}
	return "unknown"
}

// Evaluate reports whether candidate satisfies p for the given
// username. Both policies share this signature; Default ignores the
// username. Rules are checked left to right and short-circuit on the
// first failure.
func Evaluate(p Policy, username, candidate string) bool {
	switch p {
	case Strong:
		return hasMinLength(candidate, MinStrongLength) &&
			hasUpper(candidate) &&
			hasLower(candidate) &&
			hasDigit(candidate) &&
			isAlphanumeric(candidate) &&
			hasLetterRun(candidate, LetterRun) &&
			!containsFold(candidate, username)
	case Default:
		return len(candidate) <= MaxDefaultLength &&
			hasUpper(candidate) &&
			hasLower(candidate) &&
			hasDigit(candidate) &&
			isAlphanumeric(candidate)
	}
	return false
}

// IsStrong reports whether candidate satisfies the Strong policy for
// username.
func IsStrong(username, candidate string) bool {
	return Evaluate(Strong, username, candidate)
}

// IsStrongDefault reports whether candidate satisfies the Default
// policy. The username is accepted but unused; it keeps both policies
// callable through one shared shape.
func IsStrongDefault(username, candidate string) bool {
	return Evaluate(Default, username, candidate)
}

// Rule is one policy requirement and whether a candidate met it.
type Rule struct {
	Name string
	OK   bool
}

// Check returns the per-rule breakdown of candidate under p, in the
// same order Evaluate applies the rules. Every rule is evaluated, so
// callers can show the full list; the candidate passes p iff every
// Rule.OK is true.
func Check(p Policy, username, candidate string) []Rule {
	switch p {
	case Strong:
		return []Rule{
			{"at least 8 characters", hasMinLength(candidate, MinStrongLength)},
			{"an uppercase letter", hasUpper(candidate)},
			{"a lowercase letter", hasLower(candidate)},
			{"a digit", hasDigit(candidate)},
			{"letters and digits only", isAlphanumeric(candidate)},
			{"4 consecutive letters", hasLetterRun(candidate, LetterRun)},
			{"does not contain the username", !containsFold(candidate, username)},
		}
	case Default:
		return []Rule{
			{"at most 15 characters", len(candidate) <= MaxDefaultLength},
			{"an uppercase letter", hasUpper(candidate)},
			{"a lowercase letter", hasLower(candidate)},
			{"a digit", hasDigit(candidate)},
			{"letters and digits only", isAlphanumeric(candidate)},
		}
	}
	return nil
}
