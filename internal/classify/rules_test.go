package classify

import (
	"testing"

	"github.com/harborops/consign/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rule list is a frozen artifact: its order carries semantics. These
// tests pin the orderings the overlapping families depend on so an
// accidental "cleanup" shows up as a failure.
func TestDefaultRuleOrderIsFrozen(t *testing.T) {
	rules := DefaultRules()
	require.NotEmpty(t, rules)

	index := make(map[string]int, len(rules))
	for i, rule := range rules {
		index[rule.Name] = i
	}

	// Narrow families precede the broad families they are spelled inside.
	assert.Less(t, index["combi-refrigerator"], index["all-refrigerator"])
	assert.Less(t, index["ducted-ac"], index["heatpump-split-ac"])
	assert.Less(t, index["ducted-ac"], index["cooling-only-ac"])
	assert.Less(t, index["heatpump-split-ac"], index["cooling-only-ac"])

	// Keyword rules stay behind every structured prefix rule.
	lastPrefix := 0
	firstKeyword := len(rules)
	for i, rule := range rules {
		if rule.Predicate.Prefix != "" && i > lastPrefix {
			lastPrefix = i
		}
		if rule.Predicate.Prefix == "" && rule.Predicate.Contains != "" && i < firstKeyword {
			firstKeyword = i
		}
	}
	assert.Less(t, lastPrefix, firstKeyword, "keyword rules must come after all prefix rules")
}

func TestDefaultRulesFirstMatchOverlap(t *testing.T) {
	classifier := NewDefault()

	// KFD codes match both the ducted-ac rule and the broader KF family;
	// the frozen order resolves them to the commercial category.
	assert.Equal(t, model.CategoryCommercialAC, classifier.Classify("KFD-72NW/A"))

	// BCD codes match both combi-refrigerator and the BD freezer stem is
	// absent; the BC family exclusion keeps them out of all-refrigerator.
	assert.Equal(t, model.CategoryRefrigerator, classifier.Classify("BCD-258WDPM"))
}

func TestDefaultRulesBlowerPartsLeaveACFamily(t *testing.T) {
	classifier := NewDefault()

	// KFB spare blowers share the KF stem but are parts, not room units.
	// The KF rule's exclusion pushes them past the prefix families: with
	// no keyword token they fall through to Others, with one they land in
	// the part and promo categories like any other free-text code.
	assert.NotEqual(t, model.CategoryHomeAC, classifier.Classify("KFB-0900-BLWR"))
	assert.Equal(t, model.CategoryOthers, classifier.Classify("KFB-0900-BLWR"))
	assert.Equal(t, model.CategorySparePart, classifier.Classify("KFB-0900-ASSY"))

	// Real room units on either side of the carve-out are unaffected.
	assert.Equal(t, model.CategoryHomeAC, classifier.Classify("KF-26GW"))
	assert.Equal(t, model.CategoryHomeAC, classifier.Classify("KFR-35GW"))
	assert.Equal(t, model.CategoryCommercialAC, classifier.Classify("KFD-120LW"))
}

func TestDefaultRulesEveryCategoryIsValid(t *testing.T) {
	for _, rule := range DefaultRules() {
		assert.True(t, rule.Category.IsValid(), "rule %q yields invalid category %q", rule.Name, rule.Category)
		assert.NotEqual(t, model.CategoryOthers, rule.Category,
			"rule %q must not yield the fallback; Others is reached only by falling through", rule.Name)
	}
}

func TestExactTableEntriesAreValid(t *testing.T) {
	classifier := NewDefault()
	require.Positive(t, classifier.ExactCount())

	for code, category := range exactTable {
		assert.Equal(t, model.NormalizeCode(code), code, "table keys must be pre-normalized: %q", code)
		assert.True(t, category.IsValid(), "entry %q has invalid category %q", code, category)
	}
}

func TestConcreteSpecScenarios(t *testing.T) {
	classifier := NewDefault()

	// Curated table hit.
	assert.Equal(t, model.CategoryRefrigerator, classifier.Classify("BS0900EAE"))
	// No exact entry, no heuristic prefix: universal fallback.
	assert.Equal(t, model.CategoryOthers, classifier.Classify("ZZZZZZZZZ"))
}
