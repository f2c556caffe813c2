package analyzer

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/quenby-systems/passgate/internal/wordlist"
)

func TestAnalyze_StrongCandidate(t *testing.T) {
	a := New(nil, nil)
	res := a.Analyze("Password123!", Context{})

	if res.Score != TotalChecks {
		t.Errorf("score = %d, want %d", res.Score, TotalChecks)
	}
	if res.Strength != StrengthExcellent {
		t.Errorf("strength = %q, want %q", res.Strength, StrengthExcellent)
	}
	if !res.IsStrong {
		t.Error("expected IsStrong")
	}
	if len(res.FailedChecks) != 0 {
		t.Errorf("unexpected failed checks: %v", res.FailedChecks)
	}
	want := 12 * math.Log2(94)
	if math.Abs(res.Entropy-want) > 1e-9 {
		t.Errorf("entropy = %f, want %f", res.Entropy, want)
	}
}

func TestAnalyze_EmptyCandidate(t *testing.T) {
	a := New(nil, nil)
	res := a.Analyze("", Context{})

	// Only the five composition checks can fail on the empty string; the
	// contextual and pattern checks pass vacuously.
	if res.Score != 7 {
		t.Errorf("score = %d, want 7", res.Score)
	}
	wantFailed := []CheckID{
		CheckLength, CheckUppercase, CheckLowercase,
		CheckNumber, CheckSpecialChar,
	}
	if !reflect.DeepEqual(res.FailedChecks, wantFailed) {
		t.Errorf("failed = %v, want %v", res.FailedChecks, wantFailed)
	}
	if res.Entropy != 0 {
		t.Errorf("entropy = %f, want 0", res.Entropy)
	}
	if res.Strength != StrengthWeak {
		t.Errorf("strength = %q, want %q", res.Strength, StrengthWeak)
	}
	if res.IsStrong {
		t.Error("empty candidate must not be strong")
	}
}

func TestAnalyze_RepeatedRuns(t *testing.T) {
	a := New(nil, nil)
	res := a.Analyze("aaaa", Context{})

	if res.Score != 7 {
		t.Errorf("score = %d, want 7", res.Score)
	}
	wantFailed := []CheckID{
		CheckLength, CheckUppercase, CheckNumber,
		CheckSpecialChar, CheckNoRepeated,
	}
	if !reflect.DeepEqual(res.FailedChecks, wantFailed) {
		t.Errorf("failed = %v, want %v", res.FailedChecks, wantFailed)
	}
}

func TestAnalyze_PersonalInfo(t *testing.T) {
	a := New(nil, nil)
	res := a.Analyze("Alice2024!Xyz", Context{Username: "alice"})

	if res.Score != TotalChecks-1 {
		t.Errorf("score = %d, want %d", res.Score, TotalChecks-1)
	}
	wantFailed := []CheckID{CheckNoPersonalInfo}
	if !reflect.DeepEqual(res.FailedChecks, wantFailed) {
		t.Errorf("failed = %v, want %v", res.FailedChecks, wantFailed)
	}
	if !res.IsStrong {
		t.Error("a single failure must not drop the candidate below strong")
	}
}

func TestAnalyze_OldPasswordSimilarity(t *testing.T) {
	a := New(nil, nil)
	res := a.Analyze("OldPass1!Extra", Context{OldPassword: "OldPass1!"})

	wantFailed := []CheckID{CheckNotSimilarOld}
	if !reflect.DeepEqual(res.FailedChecks, wantFailed) {
		t.Errorf("failed = %v, want %v", res.FailedChecks, wantFailed)
	}
}

func TestAnalyze_CommonList(t *testing.T) {
	common := wordlist.NewSet([]string{"password", "letmein"})
	a := New(common, nil)

	res := a.Analyze("letmein", Context{})
	found := false
	for _, id := range res.FailedChecks {
		if id == CheckNotCommon {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s to fail, failed = %v", CheckNotCommon, res.FailedChecks)
	}
}

func TestAnalyze_DictionaryWords(t *testing.T) {
	dict := wordlist.NewSet([]string{"dragon", "cat"})
	a := New(nil, dict)

	res := a.Analyze("MyDragon2024!x", Context{})
	wantFailed := []CheckID{CheckNoDictWords}
	if !reflect.DeepEqual(res.FailedChecks, wantFailed) {
		t.Errorf("failed = %v, want %v", res.FailedChecks, wantFailed)
	}

	// "cat" is too short to count as a dictionary hit.
	res = a.Analyze("Concatenate77!x", Context{})
	for _, id := range res.FailedChecks {
		if id == CheckNoDictWords {
			t.Errorf("short entry must not trigger the dictionary check")
		}
	}
}

func TestAnalyze_Invariants(t *testing.T) {
	common := wordlist.NewSet([]string{"password"})
	dict := wordlist.NewSet([]string{"horse"})
	a := New(common, dict)

	candidates := []string{
		"", "a", "password", "Password123!", "aaaa",
		"correcthorsebatterystaple", "Tr0ub4dor&3", "qwertyuiop",
		"S3cure#Phrase!", "12345678901234",
	}
	for _, c := range candidates {
		res := a.Analyze(c, Context{Username: "alice", OldPassword: "hunter2"})
		if res.Score < 0 || res.Score > TotalChecks {
			t.Errorf("%q: score %d out of range", c, res.Score)
		}
		if res.TotalPossible != TotalChecks {
			t.Errorf("%q: total = %d, want %d", c, res.TotalPossible, TotalChecks)
		}
		if len(res.FailedChecks) != TotalChecks-res.Score {
			t.Errorf("%q: %d failed checks with score %d", c, len(res.FailedChecks), res.Score)
		}
		if res.IsStrong != (res.Score >= strongThreshold) {
			t.Errorf("%q: IsStrong = %v with score %d", c, res.IsStrong, res.Score)
		}
		if res.Entropy < 0 {
			t.Errorf("%q: negative entropy %f", c, res.Entropy)
		}
	}
}

func TestAnalyze_FailedChecksJSONEmptyList(t *testing.T) {
	a := New(nil, nil)
	res := a.Analyze("Password123!", Context{})

	if res.FailedChecks == nil {
		t.Fatal("FailedChecks must be non-nil when all checks pass")
	}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(b), `"failed_checks":[]`) {
		t.Errorf("expected empty list in JSON, got %s", b)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := New(nil, nil)
	ctx := Context{Username: "bob", Email: "bob@example.com"}
	first := a.Analyze("Tr0ub4dor&3", ctx)
	for i := 0; i < 5; i++ {
		if got := a.Analyze("Tr0ub4dor&3", ctx); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}
