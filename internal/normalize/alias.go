package normalize

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/schema"
)

// AliasEntry is the metadata stripped from the wrappers of one canonical value.
type AliasEntry struct {
	Value   schema.Literal
	Aliases *set.Set[string]
	Default bool
}

// SortedAliases returns the aliases in lexical order.
func (e *AliasEntry) SortedAliases() []string {
	out := e.Aliases.Slice()
	slices.Sort(out)

	return out
}

func (e *AliasEntry) agrees(o *AliasEntry) bool {
	return e.Default == o.Default && e.Aliases.EqualSet(o.Aliases)
}

func (e *AliasEntry) describe() string {
	quoted := make([]string, 0, e.Aliases.Size())
	for _, a := range e.SortedAliases() {
		quoted = append(quoted, fmt.Sprintf("%q", a))
	}

	return fmt.Sprintf("aliases [%s] default=%t", strings.Join(quoted, ","), e.Default)
}

// AliasIndex maps canonical literal values to their alias metadata.
// Entries keep their first insertion order.
type AliasIndex struct {
	entries map[schema.Literal]*AliasEntry
	order   []schema.Literal
}

// NewAliasIndex creates an empty index.
func NewAliasIndex() *AliasIndex {
	return &AliasIndex{entries: map[schema.Literal]*AliasEntry{}}
}

// Add records aliases and the default flag for value. If value is already
// indexed, the new record must carry the same alias set and flag.
func (x *AliasIndex) Add(value schema.Literal, aliases []string, isDefault bool) error {
	entry := &AliasEntry{Value: value, Aliases: set.From(aliases), Default: isDefault}
	if err := x.check(entry); err != nil {
		return err
	}

	x.put(entry)

	return nil
}

// Merge adds every entry of other. Either all entries agree with x and are
// added, or x is left unchanged and the first conflict is returned.
func (x *AliasIndex) Merge(other *AliasIndex) error {
	if other == nil {
		return nil
	}

	for _, e := range other.Entries() {
		if err := x.check(e); err != nil {
			return err
		}
	}

	for _, e := range other.Entries() {
		x.put(&AliasEntry{Value: e.Value, Aliases: e.Aliases.Copy(), Default: e.Default})
	}

	return nil
}

// Lookup returns the entry for value.
func (x *AliasIndex) Lookup(value schema.Literal) (*AliasEntry, bool) {
	e, ok := x.entries[value]
	return e, ok
}

// Get returns the entry for the string literal s.
func (x *AliasIndex) Get(s string) (*AliasEntry, bool) {
	return x.Lookup(schema.Literal{Kind: schema.LiteralString, Text: s})
}

// Len returns the number of indexed values.
func (x *AliasIndex) Len() int {
	return len(x.order)
}

// Entries returns the entries in insertion order.
func (x *AliasIndex) Entries() []*AliasEntry {
	out := make([]*AliasEntry, 0, len(x.order))
	for _, v := range x.order {
		out = append(out, x.entries[v])
	}

	return out
}

func (x *AliasIndex) check(e *AliasEntry) error {
	prev, ok := x.entries[e.Value]
	if !ok || prev.agrees(e) {
		return nil
	}

	return diagnostic.Errorf(diagnostic.KindAliasConflict, e.Value.Text,
		"%s conflicts with %s", e.describe(), prev.describe())
}

func (x *AliasIndex) put(e *AliasEntry) {
	if x.entries == nil {
		x.entries = map[schema.Literal]*AliasEntry{}
	}

	if _, ok := x.entries[e.Value]; ok {
		return
	}

	x.entries[e.Value] = e
	x.order = append(x.order, e.Value)
}
