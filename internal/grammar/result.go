package grammar

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"schema-normalizer/internal/normalize"
	"schema-normalizer/internal/schema"
)

// Output is the YAML form of one or more normalized roots.
type Output struct {
	Version string      `yaml:"version"`
	Results []ResultDoc `yaml:"results"`
	Aliases []AliasDoc  `yaml:"aliases,omitempty"`
}

// ResultDoc is a normalized root: its compact text, its tree and the
// declarations it reached.
type ResultDoc struct {
	Root      string     `yaml:"root,omitempty"`
	Schema    string     `yaml:"schema"`
	Tree      *yaml.Node `yaml:"tree"`
	Reachable []string   `yaml:"reachable,flow,omitempty"`
}

// AliasDoc is one alias index entry.
type AliasDoc struct {
	Value   string   `yaml:"value"`
	Kind    string   `yaml:"kind,omitempty"`
	Aliases []string `yaml:"aliases,flow"`
	Default bool     `yaml:"default"`
}

// NewOutput builds the output for results, with aliases as the merged index.
func NewOutput(aliases *normalize.AliasIndex, results ...*normalize.Result) Output {
	out := Output{Version: CurrentVersion}

	for _, r := range results {
		out.Results = append(out.Results, ResultDoc{
			Root:      r.Root,
			Schema:    schema.Format(r.Schema),
			Tree:      EncodeExpr(r.Schema),
			Reachable: r.Reachable,
		})
	}

	if aliases != nil {
		out.Aliases = AliasDocs(aliases)
	}

	return out
}

// AliasDocs lists the entries of x in insertion order.
func AliasDocs(x *normalize.AliasIndex) []AliasDoc {
	var docs []AliasDoc

	for _, e := range x.Entries() {
		d := AliasDoc{
			Value:   e.Value.Text,
			Aliases: e.SortedAliases(),
			Default: e.Default,
		}

		if e.Value.Kind != schema.LiteralString {
			d.Kind = e.Value.Kind.String()
		}

		docs = append(docs, d)
	}

	return docs
}

// MarshalOutput serializes an Output to YAML.
func MarshalOutput(out Output) ([]byte, error) {
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}

	return data, nil
}

// ParseOutput parses YAML produced by MarshalOutput.
func ParseOutput(data []byte) (*Output, error) {
	var out Output

	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse output YAML: %w", err)
	}

	return &out, nil
}
