package grammar

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"schema-normalizer/internal/schema"
)

// EncodeExpr encodes an expression as a YAML node, the inverse of DecodeExpr.
func EncodeExpr(e schema.Expr) *yaml.Node {
	switch n := e.(type) {
	case *schema.Literal:
		return literalNode(n)

	case *schema.Union:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, alt := range n.Alts {
			seq.Content = append(seq.Content, EncodeExpr(alt))
		}

		if len(n.Alts) == 0 {
			return mappingNode("union", seq)
		}

		return seq

	case *schema.Product:
		fields := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range n.Fields {
			key := f.Name
			if f.Optional {
				key += "?"
			}

			fields.Content = append(fields.Content, scalarNode("!!str", key), EncodeExpr(f.Type))
		}

		return mappingNode("product", fields)

	case *schema.Array:
		return mappingNode("array", EncodeExpr(n.Elem))

	case *schema.Primitive:
		return mappingNode("primitive", scalarNode("!!str", string(n.Name)))

	case *schema.Reference:
		ref := mappingNode("ref", scalarNode("!!str", n.Name))
		if len(n.Args) > 0 {
			args := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, a := range n.Args {
				args.Content = append(args.Content, EncodeExpr(a))
			}

			ref.Content = append(ref.Content, scalarNode("!!str", "args"), args)
		}

		return ref

	case *schema.ParamRef:
		return mappingNode("param", scalarNode("!!str", n.Name))

	case *schema.Wildcard:
		return mappingNode("wildcard", scalarNode("!!bool", "true"))

	case *schema.Wrapper:
		aliases := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, a := range n.Aliases {
			aliases.Content = append(aliases.Content, quoted(a))
		}

		payload := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: []*yaml.Node{
			scalarNode("!!str", "value"), EncodeExpr(n.Display),
			scalarNode("!!str", "aliases"), aliases,
			scalarNode("!!str", "default"), scalarNode("!!bool", strconv.FormatBool(n.Default)),
		}}

		return mappingNode("literal", payload)

	default:
		return scalarNode("!!null", "null")
	}
}

func literalNode(l *schema.Literal) *yaml.Node {
	switch l.Kind {
	case schema.LiteralNumber:
		if _, err := strconv.ParseInt(l.Text, 10, 64); err == nil {
			return scalarNode("!!int", l.Text)
		}

		return scalarNode("!!float", l.Text)
	case schema.LiteralBoolean:
		return scalarNode("!!bool", l.Text)
	default:
		return quoted(l.Text)
	}
}

// quoted keeps strings such as "6" or "true" from decoding as other literals.
func quoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func mappingNode(key string, value *yaml.Node) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{scalarNode("!!str", key), value},
	}
}
