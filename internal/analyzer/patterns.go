package analyzer

import "strings"

// referenceSequences are the fixed runs the sequential-run detector looks
// for. Detection is literal containment: the candidate must contain an
// entire reference string, not an arbitrary slice of one. That makes this
// a deliberately conservative detector; the 4-character keyboard windows
// in HasKeyboardPattern catch the short patterns this one misses.
var referenceSequences = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"zyxwvutsrqponmlkjihgfedcba",
	"01234567890",
	"9876543210",
	"qwertyuiop",
	"poiuytrewq",
	"asdfghjkl",
	"lkjhgfdsa",
	"zxcvbnm",
	"mnbvcxz",
}

// keyboardRows are the physical rows used by the keyboard-pattern detector.
var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

// keyboardWindow is the slice width slid across each keyboard row.
const keyboardWindow = 4

// HasSequentialRun reports whether the lowercased candidate contains any
// of the fixed reference sequences in full.
func HasSequentialRun(lower string) bool {
	for _, seq := range referenceSequences {
		if strings.Contains(lower, seq) {
			return true
		}
	}
	return false
}

// HasRepeatedRun reports whether any character appears three or more
// times consecutively anywhere in the candidate.
func HasRepeatedRun(lower string) bool {
	var prev rune
	run := 0
	for _, r := range lower {
		if run > 0 && r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// HasKeyboardPattern reports whether any 4-character slice of a keyboard
// row, forward or reversed, appears in the lowercased candidate.
func HasKeyboardPattern(lower string) bool {
	for _, row := range keyboardRows {
		for i := 0; i+keyboardWindow <= len(row); i++ {
			window := row[i : i+keyboardWindow]
			if strings.Contains(lower, window) || strings.Contains(lower, reverse(window)) {
				return true
			}
		}
	}
	return false
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
