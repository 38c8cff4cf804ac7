package token

// Digits is the scan set for ASCII digit runs.
const Digits = "0123456789"

func IsDigit(r rune) bool {
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
