// Package css holds the rule model shared by the generator and the optimizer:
// properties, rules, the insertion-ordered rule table, selector escaping and
// the stylesheet printer.
package css

import "slices"

// Property is a single CSS declaration
type Property struct {
	Name      string // "padding-left"
	Value     string // "1rem"
	Important bool   // Render with !important
}

// Rule is one selector block, optionally wrapped in a media query
type Rule struct {
	Selector    string     // ".hover\:bg-blue-600:hover"
	Properties  []Property // Declaration order is preserved
	MediaQuery  string     // "(min-width: 768px)", empty for none
	Specificity uint32     // Internal ordering weight, not cascade specificity
}

// Prop is a shorthand constructor used heavily by the utility parsers.
func Prop(name, value string) Property {
	return Property{Name: name, Value: value}
}

// Clone returns a deep copy so the caller can never alias table storage.
func (r Rule) Clone() Rule {
	out := r
	if r.Properties != nil {
		out.Properties = make([]Property, len(r.Properties))
		copy(out.Properties, r.Properties)
	}
	return out
}

// Equal reports whether r and o render identically.
func (r Rule) Equal(o Rule) bool {
	return r.Selector == o.Selector &&
		r.MediaQuery == o.MediaQuery &&
		r.Specificity == o.Specificity &&
		slices.Equal(r.Properties, o.Properties)
}

// Entry pairs a rule with its table key
type Entry struct {
	Key  string
	Rule Rule
}

// Table maps a key (usually the original class token) to a rule and keeps
// first-insertion order. Re-inserting a key replaces the whole value in place.
type Table struct {
	order []string
	rules map[string]Rule
}

// NewTable creates an empty rule table.
func NewTable() *Table {
	return &Table{rules: make(map[string]Rule)}
}

// Upsert stores r under key. An existing key keeps its position.
func (t *Table) Upsert(key string, r Rule) {
	if _, ok := t.rules[key]; !ok {
		t.order = append(t.order, key)
	}
	t.rules[key] = r.Clone()
}

// Get returns a copy of the rule stored under key.
func (t *Table) Get(key string) (Rule, bool) {
	r, ok := t.rules[key]
	if !ok {
		return Rule{}, false
	}
	return r.Clone(), true
}

// Remove deletes key and reports whether it existed.
func (t *Table) Remove(key string) bool {
	if _, ok := t.rules[key]; !ok {
		return false
	}
	delete(t.rules, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.order)
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	return keys
}

// Rules returns copies of all rules in insertion order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.rules[k].Clone())
	}
	return out
}

// Entries returns copies of all key/rule pairs in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, Entry{Key: k, Rule: t.rules[k].Clone()})
	}
	return out
}

// Reset swaps the whole table content for entries in one step.
// Duplicate keys keep the first position and the last value.
func (t *Table) Reset(entries []Entry) {
	t.order = t.order[:0]
	t.rules = make(map[string]Rule, len(entries))
	for _, e := range entries {
		t.Upsert(e.Key, e.Rule)
	}
}

// PropertyCount returns the total number of declarations across all rules.
func (t *Table) PropertyCount() int {
	n := 0
	for _, k := range t.order {
		n += len(t.rules[k].Properties)
	}
	return n
}
