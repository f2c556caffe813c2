package suggest

import "fmt"

// Default word pools for generated suggestions.
var (
	DefaultAdjectives = []string{"Red", "Blue", "Happy", "Secure", "Strong"}
	DefaultNouns      = []string{"Dragon", "Coffee", "Mountain", "Shield", "Castle"}
)

// symbols is the fixed pool the trailing symbol is drawn from.
const symbols = "!@#$%^&*"

// Generator produces suggestion strings of the form
// Adjective + Noun + two digits + symbol.
type Generator struct {
	adjectives []string
	nouns      []string
	chooser    Chooser
}

// NewGenerator returns a Generator over the given pools. Empty pools fall
// back to the defaults; a nil chooser falls back to CryptoChooser.
func NewGenerator(adjectives, nouns []string, chooser Chooser) *Generator {
	if len(adjectives) == 0 {
		adjectives = DefaultAdjectives
	}
	if len(nouns) == 0 {
		nouns = DefaultNouns
	}
	if chooser == nil {
		chooser = CryptoChooser{}
	}
	return &Generator{adjectives: adjectives, nouns: nouns, chooser: chooser}
}

// Password returns one suggested password: a word pair, a two-digit
// number in [10, 99], and one symbol.
func (g *Generator) Password() (string, error) {
	adj, err := g.pick(g.adjectives)
	if err != nil {
		return "", err
	}
	noun, err := g.pick(g.nouns)
	if err != nil {
		return "", err
	}
	n, err := g.chooser.IntN(90)
	if err != nil {
		return "", err
	}
	si, err := g.chooser.IntN(len(symbols))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%02d%c", adj, noun, n+10, symbols[si]), nil
}

// Passwords returns count suggestions.
func (g *Generator) Passwords(count int) ([]string, error) {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		p, err := g.Password()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (g *Generator) pick(pool []string) (string, error) {
	i, err := g.chooser.IntN(len(pool))
	if err != nil {
		return "", err
	}
	return pool[i], nil
}
