// Package wordlist loads the read-only reference lists consumed by the
// analyzer: the common-secrets list and the language dictionary. Load
// failures never propagate; a missing file degrades to the embedded
// default list or to no list at all.
package wordlist

import (
	"bufio"
	"os"
	"strings"
)

// Set is an immutable lowercase word list with constant-time exact
// membership lookup. The nil Set behaves as an empty list.
type Set struct {
	members map[string]struct{}
	words   []string
}

// NewSet builds a Set from the given words. Entries are trimmed,
// lowercased, and deduplicated; blank entries are dropped.
func NewSet(words []string) *Set {
	s := &Set{members: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := s.members[w]; ok {
			continue
		}
		s.members[w] = struct{}{}
		s.words = append(s.words, w)
	}
	return s
}

// Contains reports whether word is an exact member of the list.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[word]
	return ok
}

// ContainsSubstringOf reports whether any entry longer than minLen
// characters appears as a substring of candidate.
func (s *Set) ContainsSubstringOf(candidate string, minLen int) bool {
	if s == nil || candidate == "" {
		return false
	}
	for _, w := range s.words {
		if len(w) > minLen && strings.Contains(candidate, w) {
			return true
		}
	}
	return false
}

// Len returns the number of entries in the list.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// LoadFile reads a word list with one entry per line.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewSet(words), nil
}

// LoadCommon returns the common-secrets list at path, or the embedded
// default list when path is empty or unreadable.
func LoadCommon(path string) *Set {
	if path != "" {
		if s, err := LoadFile(path); err == nil {
			return s
		}
	}
	return NewSet(defaultCommonSecrets)
}

// LoadDictionary returns the dictionary at path, or nil when it is
// unavailable. A nil dictionary disables the dictionary check rather than
// failing it.
func LoadDictionary(path string) *Set {
	if path == "" {
		return nil
	}
	s, err := LoadFile(path)
	if err != nil {
		return nil
	}
	return s
}
