package board

import (
	"strings"

	"github.com/matzehuels/seqboard/pkg/errors"
)

// Replacement maps one substring of a cell to another.
type Replacement struct {
	Key   string
	Value string
}

// Replacements is an ordered list of substitutions applied key by key.
type Replacements []Replacement

// DefaultReplacements returns the standard suit mapping:
// clubs, hearts, spades, diamonds in that order.
func DefaultReplacements() Replacements {
	return Replacements{
		{Key: "C", Value: "♣"},
		{Key: "H", Value: "♥"},
		{Key: "S", Value: "♠"},
		{Key: "D", Value: "♦"},
	}
}

// Apply runs every replacement over cell in order and returns the result.
// Matching is plain substring matching with no pattern syntax.
func (rs Replacements) Apply(cell string) string {
	for _, r := range rs {
		cell = strings.ReplaceAll(cell, r.Key, r.Value)
	}
	return cell
}

// Keys returns the replacement keys in order.
func (rs Replacements) Keys() []string {
	keys := make([]string, len(rs))
	for i, r := range rs {
		keys[i] = r.Key
	}
	return keys
}

// ParseReplacement parses a "KEY=VALUE" pair. Only the first '=' splits, so
// the value may itself contain '='. The key must be non-empty.
func ParseReplacement(s string) (Replacement, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return Replacement{}, errors.New(errors.ErrCodeInvalidReplacement,
			"replacement %q must have the form KEY=VALUE", s)
	}
	if err := errors.ValidateReplacementKey(key); err != nil {
		return Replacement{}, err
	}
	return Replacement{Key: key, Value: value}, nil
}

// ParseReplacements parses each pair in order.
func ParseReplacements(pairs []string) (Replacements, error) {
	rs := make(Replacements, 0, len(pairs))
	for _, p := range pairs {
		r, err := ParseReplacement(p)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}
