package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadCandidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.txt")
	content := "Password123!\n\nhunter2\n\nTr0ub4dor&3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := readCandidates(path)
	if err != nil {
		t.Fatalf("readCandidates: %v", err)
	}
	want := []string{"Password123!", "hunter2", "Tr0ub4dor&3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClampConcurrency(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1},
		{-4, 1},
		{1, 1},
		{8, 8},
	}
	for _, c := range cases {
		if got := clampConcurrency(c.in); got != c.want {
			t.Errorf("clampConcurrency(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestReadCandidates_Missing(t *testing.T) {
	if _, err := readCandidates(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
