package roster

import "unicode"

// LetterFor returns the bucket letter for an actor display name. Digits,
// punctuation and whitespace are skipped; the first letter reached decides
// the outcome. An ASCII letter is folded to uppercase and becomes the bucket.
// A non-ASCII letter (accented characters etc.) is deliberately not bucketed:
// names leading with one have no bucket and the second return is false.
func LetterFor(name string) (string, bool) {
	for _, r := range name {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' {
			return string(r), true
		}
		if unicode.IsLetter(r) {
			return "", false
		}
	}
	return "", false
}

// AllLetters returns the full A-Z letter set in order.
func AllLetters() []string {
	letters := make([]string, 0, 26)
	for c := byte('A'); c <= 'Z'; c++ {
		letters = append(letters, string(c))
	}
	return letters
}
