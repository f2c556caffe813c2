package analyzer

import "testing"

func TestClassify_Ladder(t *testing.T) {
	cases := []struct {
		score   int
		entropy float64
		want    Strength
	}{
		{12, 80, StrengthExcellent},
		{10, 75, StrengthExcellent},
		{10, 74.9, StrengthVeryStrong}, // entropy misses row 1, lands on row 2
		{8, 60, StrengthVeryStrong},
		{8, 59, StrengthStrong}, // row 3 still satisfied
		{6, 45, StrengthStrong},
		{8, 40, StrengthModerate},
		{4, 30, StrengthModerate},
		{4, 29.9, StrengthWeak},
		{3, 100, StrengthWeak}, // high entropy cannot rescue a low score
		{2, 0, StrengthWeak},
		{1, 100, StrengthVeryWeak},
		{0, 0, StrengthVeryWeak},
	}

	for _, c := range cases {
		if got := Classify(c.score, c.entropy); got != c.want {
			t.Errorf("Classify(%d, %.1f) = %q, want %q", c.score, c.entropy, got, c.want)
		}
	}
}
