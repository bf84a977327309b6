package password

import "strings"

// Character classification is ASCII-only. Candidates and usernames are
// treated as byte sequences; anything outside a-z, A-Z, 0-9 is a
// non-letter, non-digit for every predicate below.

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return isUpper(c) || isLower(c) }

func isAlnum(c byte) bool { return isLetter(c) || isDigit(c) }

// hasUpper reports whether s contains at least one uppercase letter.
func hasUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if isUpper(s[i]) {
			return true
		}
	}
	return false
}

// hasLower reports whether s contains at least one lowercase letter.
func hasLower(s string) bool {
	for i := 0; i < len(s); i++ {
		if isLower(s[i]) {
			return true
		}
	}
	return false
}

// hasDigit reports whether s contains at least one decimal digit.
func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			return true
		}
	}
	return false
}

// hasMinLength reports whether s is at least n bytes long.
func hasMinLength(s string, n int) bool { return len(s) >= n }

// isAlphanumeric reports whether every character of s is a letter or
// digit. The empty string is vacuously alphanumeric.
func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlnum(s[i]) {
			return false
		}
	}
	return true
}

// hasLetterRun reports whether s contains a contiguous run of at least
// k letters. Any non-letter resets the run.
func hasLetterRun(s string, k int) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			run = 0
			continue
		}
		run++
		if run >= k {
			return true
		}
	}
	return false
}

// containsFold reports whether needle occurs in haystack ignoring case.
// An empty needle is never contained, nor is one longer than haystack.
func containsFold(haystack, needle string) bool {
	if needle == "" || len(needle) > len(haystack) {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
