package grammar

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"schema-normalizer/internal/common"
	"schema-normalizer/internal/schema"
)

// Expression forms of a mapping node, one key each ("args" goes with "ref").
var exprForms = []string{"ref", "param", "union", "product", "array", "literal", "primitive", "wildcard"}

// wrapperDoc is the payload of a {literal: ...} expression.
type wrapperDoc struct {
	Value   yaml.Node     `yaml:"value"`
	Aliases StringOrArray `yaml:"aliases"`
	Default bool          `yaml:"default"`
}

// DecodeExpr decodes a YAML node into an expression.
//
// Encoding:
//   - scalar: a literal (string, number or boolean by YAML tag)
//   - sequence: a union of its items
//   - {ref: Name, args: [...]}: a reference
//   - {param: NAME}: a parameter reference
//   - {union: [...]}: a union
//   - {product: {field: expr, "optional?": expr}}: a product, fields in order
//   - {array: expr}: an array
//   - {literal: {value: expr, aliases: [...], default: bool}}: a wrapper
//   - {primitive: string|number|boolean|never}: a primitive
//   - {wildcard: true}: a wildcard
func DecodeExpr(node *yaml.Node) (schema.Expr, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, fmt.Errorf("line %d: empty document", node.Line)
		}

		return DecodeExpr(node.Content[0])

	case yaml.AliasNode:
		return DecodeExpr(node.Alias)

	case yaml.ScalarNode:
		return decodeScalar(node)

	case yaml.SequenceNode:
		return decodeUnion(node)

	case yaml.MappingNode:
		return decodeMapping(node)

	default:
		return nil, fmt.Errorf("line %d: expected an expression", node.Line)
	}
}

func decodeScalar(node *yaml.Node) (schema.Expr, error) {
	switch node.ShortTag() {
	case "!!str":
		return schema.Str(node.Value), nil
	case "!!int", "!!float":
		return schema.Num(node.Value), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}

		return schema.Bool(b), nil
	default:
		return nil, fmt.Errorf("line %d: unsupported literal %s %q", node.Line, node.ShortTag(), node.Value)
	}
}

func decodeUnion(node *yaml.Node) (schema.Expr, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: union expects a list", node.Line)
	}

	alts, err := common.Map(node.Content, DecodeExpr)
	if err != nil {
		return nil, err
	}

	return &schema.Union{Alts: alts}, nil
}

func decodeMapping(node *yaml.Node) (schema.Expr, error) {
	keys := map[string]*yaml.Node{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i].Value
		if _, dup := keys[k]; dup {
			return nil, fmt.Errorf("line %d: duplicate key %q", node.Content[i].Line, k)
		}

		keys[k] = node.Content[i+1]
	}

	args, hasArgs := keys["args"]
	delete(keys, "args")

	if len(keys) != 1 {
		return nil, fmt.Errorf("line %d: expected exactly one of %s", node.Line, strings.Join(exprForms, ", "))
	}

	var (
		form  string
		value *yaml.Node
	)

	for k, v := range keys {
		form, value = k, v
	}

	if hasArgs && form != "ref" {
		return nil, fmt.Errorf("line %d: args are only allowed with ref", node.Line)
	}

	switch form {
	case "ref":
		var name string
		if err := value.Decode(&name); err != nil || name == "" {
			return nil, fmt.Errorf("line %d: ref expects a declaration name", value.Line)
		}

		ref := &schema.Reference{Name: name}

		if hasArgs {
			if args.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("line %d: args expects a list", args.Line)
			}

			var err error

			ref.Args, err = common.Map(args.Content, DecodeExpr)
			if err != nil {
				return nil, err
			}
		}

		return ref, nil

	case "param":
		var name string
		if err := value.Decode(&name); err != nil || name == "" {
			return nil, fmt.Errorf("line %d: param expects a parameter name", value.Line)
		}

		return schema.P(name), nil

	case "union":
		return decodeUnion(value)

	case "product":
		return decodeProduct(value)

	case "array":
		elem, err := DecodeExpr(value)
		if err != nil {
			return nil, err
		}

		return schema.ArrayOf(elem), nil

	case "literal":
		return decodeWrapper(value)

	case "primitive":
		name := schema.PrimitiveName(value.Value)
		if value.Kind != yaml.ScalarNode || !name.IsValid() {
			return nil, fmt.Errorf("line %d: unknown primitive %q", value.Line, value.Value)
		}

		return schema.Prim(name), nil

	case "wildcard":
		var on bool
		if err := value.Decode(&on); err != nil || !on {
			return nil, fmt.Errorf("line %d: wildcard expects true", value.Line)
		}

		return schema.Any(), nil

	default:
		return nil, fmt.Errorf("line %d: unknown expression form %q, expected one of %s",
			node.Line, form, strings.Join(exprForms, ", "))
	}
}

func decodeProduct(node *yaml.Node) (schema.Expr, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: product expects a mapping of fields", node.Line)
	}

	p := &schema.Product{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value

		name, optional := strings.CutSuffix(key, "?")
		if name == "" {
			return nil, fmt.Errorf("line %d: empty field name", node.Content[i].Line)
		}

		if slices.ContainsFunc(p.Fields, func(f schema.Field) bool { return f.Name == name }) {
			return nil, fmt.Errorf("line %d: duplicate field %q", node.Content[i].Line, name)
		}

		t, err := DecodeExpr(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}

		p.Fields = append(p.Fields, schema.Field{Name: name, Type: t, Optional: optional})
	}

	return p, nil
}

func decodeWrapper(node *yaml.Node) (schema.Expr, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: literal expects a mapping with value, aliases and default", node.Line)
	}

	var wd wrapperDoc
	if err := node.Decode(&wd); err != nil {
		return nil, err
	}

	if wd.Value.Kind == 0 {
		return nil, fmt.Errorf("line %d: literal is missing its value", node.Line)
	}

	display, err := DecodeExpr(&wd.Value)
	if err != nil {
		return nil, err
	}

	var aliases []string
	if !wd.Aliases.IsEmpty() {
		aliases = wd.Aliases
	}

	return schema.Wrap(display, aliases, wd.Default), nil
}
