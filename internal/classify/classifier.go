// Package classify implements the material code classifier: a curated
// exact-match table consulted first, then an ordered list of heuristic
// rules, then a fixed fallback category.
package classify

import (
	"strings"

	"github.com/harborops/consign/internal/model"
)

// Predicate tests a normalized code. A zero Predicate matches nothing.
// Prefix and Contains may be combined; NotPrefixes carves exception bands
// out of a broader prefix family.
type Predicate struct {
	Prefix      string
	Contains    string
	NotPrefixes []string
}

// Matches evaluates the predicate against an already-normalized code.
func (p Predicate) Matches(code string) bool {
	if p.Prefix == "" && p.Contains == "" {
		return false
	}
	if p.Prefix != "" && !strings.HasPrefix(code, p.Prefix) {
		return false
	}
	if p.Contains != "" && !strings.Contains(code, p.Contains) {
		return false
	}
	for _, not := range p.NotPrefixes {
		if strings.HasPrefix(code, not) {
			return false
		}
	}
	return true
}

// Rule pairs a predicate with the category it yields. Rules are evaluated
// in list order and the first match wins, so their order is part of the
// classifier's contract: overlapping predicates rely on it.
type Rule struct {
	Name      string
	Category  model.CategoryLabel
	Predicate Predicate
}

// Classifier maps raw codes to category labels. It is immutable after
// construction and safe for shared use.
type Classifier struct {
	exact map[string]model.CategoryLabel
	rules []Rule
}

// New creates a classifier with the given exact-match table and ordered
// rule list. The table is copied so callers cannot mutate it afterwards.
func New(exact map[string]model.CategoryLabel, rules []Rule) *Classifier {
	table := make(map[string]model.CategoryLabel, len(exact))
	for code, category := range exact {
		table[model.NormalizeCode(code)] = category
	}
	return &Classifier{exact: table, rules: rules}
}

// NewDefault creates a classifier with the frozen production table and
// rule set.
func NewDefault() *Classifier {
	return New(exactTable, defaultRules)
}

// Classify returns the category for a raw code. It is total: every input,
// including the empty string, yields exactly one valid label. An exact
// table hit takes absolute precedence over every heuristic rule; if no rule
// matches either, the result is CategoryOthers.
func (c *Classifier) Classify(code string) model.CategoryLabel {
	normalized := model.NormalizeCode(code)

	if category, ok := c.exact[normalized]; ok {
		return category
	}

	for _, rule := range c.rules {
		if rule.Predicate.Matches(normalized) {
			return rule.Category
		}
	}

	return model.CategoryOthers
}

// Rules returns the classifier's rule list in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// ExactCount returns the number of curated exact-match entries.
func (c *Classifier) ExactCount() int {
	return len(c.exact)
}
