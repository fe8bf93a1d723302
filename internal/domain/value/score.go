package value

import "strings"

const quickScoreLen = 4

// QuickScore formats a raw rating cell as the 4-character digit string used
// in PACP summary sheets: the first run of digits is extracted, left-padded
// with zeros to 4 characters; runs longer than 4 keep their first 4 digits.
// A cell without digits (including an empty cell) yields "0000".
func QuickScore(raw string) string {
	digits := firstDigitRun(raw)

	switch {
	case digits == "":
		return "0000"
	case len(digits) > quickScoreLen:
		return digits[:quickScoreLen]
	default:
		return strings.Repeat("0", quickScoreLen-len(digits)) + digits
	}
}

func firstDigitRun(raw string) string {
	start := -1

	for i := 0; i < len(raw); i++ {
		isDigit := raw[i] >= '0' && raw[i] <= '9'

		switch {
		case isDigit && start < 0:
			start = i
		case !isDigit && start >= 0:
			return raw[start:i]
		}
	}

	if start < 0 {
		return ""
	}

	return raw[start:]
}
