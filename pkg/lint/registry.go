package lint

import (
	"slices"
	"strings"
	"sync"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[string]RuleDef),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages. It panics on a malformed
// definition, which can only be a programming error.
func Register(rule RuleDef) {
	if err := rule.validate(); err != nil {
		panic("lint: " + err.Error())
	}
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// GetAll returns all registered rules sorted by ID.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sortRules(rules)
	return rules
}

// GetByID returns a rule by its ID. Lookup is case-insensitive.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[strings.ToUpper(strings.TrimSpace(id))]
	return rule, ok
}

// GetByGroup returns all rules in a specific group, sorted by ID.
func GetByGroup(group string) []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []RuleDef
	for _, rule := range globalRegistry.rules {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// AllRules returns metadata for all registered rules.
func AllRules() []RuleInfo {
	rules := GetAll()
	infos := make([]RuleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, r.Info())
	}
	return infos
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}

func sortRules(rules []RuleDef) {
	slices.SortFunc(rules, func(a, b RuleDef) int {
		return strings.Compare(a.ID, b.ID)
	})
}
