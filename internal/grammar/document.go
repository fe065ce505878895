package grammar

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"schema-normalizer/internal/normalize"
	"schema-normalizer/internal/schema"
)

// CurrentVersion is the only grammar document version understood.
const CurrentVersion = "1"

var validate = validator.New()

// Document is a grammar file: a set of declarations plus the roots to
// normalize by default.
type Document struct {
	Version      string           `yaml:"version" validate:"required,oneof=1"`
	Roots        StringOrArray    `yaml:"roots,omitempty" validate:"unique,dive,required"`
	Declarations []DeclarationDoc `yaml:"declarations" validate:"required,min=1,dive"`
}

// DeclarationDoc is one named declaration. Body and parameter constraints
// are expression nodes, decoded by Decode.
type DeclarationDoc struct {
	Name   string     `yaml:"name" validate:"required"`
	Params []ParamDoc `yaml:"params,omitempty" validate:"unique=Name,dive"`
	Body   yaml.Node  `yaml:"body" validate:"-"`
}

// ParamDoc is a type parameter with an optional "extends" constraint.
type ParamDoc struct {
	Name    string     `yaml:"name" validate:"required"`
	Extends *yaml.Node `yaml:"extends,omitempty" validate:"-"`
}

// LoadFile loads and parses a YAML grammar file from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a validated Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grammar YAML: %w", err)
	}

	applyDefaults(&doc)

	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid grammar document: %w", err)
	}

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}
}

// Decode decodes every declaration of the document.
func (d *Document) Decode() ([]schema.Declaration, error) {
	out := make([]schema.Declaration, 0, len(d.Declarations))

	for i := range d.Declarations {
		decl, err := d.Declarations[i].decode()
		if err != nil {
			return nil, err
		}

		out = append(out, decl)
	}

	return out, nil
}

// Table decodes the document into a declaration table.
func (d *Document) Table() (*normalize.Table, error) {
	decls, err := d.Decode()
	if err != nil {
		return nil, err
	}

	return normalize.NewTable(decls...)
}

func (dd *DeclarationDoc) decode() (schema.Declaration, error) {
	if dd.Body.Kind == 0 {
		return schema.Declaration{}, fmt.Errorf("declaration %s: missing body", dd.Name)
	}

	body, err := DecodeExpr(&dd.Body)
	if err != nil {
		return schema.Declaration{}, fmt.Errorf("declaration %s: %w", dd.Name, err)
	}

	decl := schema.Declaration{Name: dd.Name, Body: body}

	for _, p := range dd.Params {
		param := schema.Param{Name: p.Name}

		if p.Extends != nil {
			param.Constraint, err = DecodeExpr(p.Extends)
			if err != nil {
				return schema.Declaration{}, fmt.Errorf("declaration %s, parameter %s: %w", dd.Name, p.Name, err)
			}
		}

		decl.Params = append(decl.Params, param)
	}

	return decl, nil
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// WriteFile writes a Document to the given path.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal grammar: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write grammar file %s: %w", path, err)
	}

	return nil
}

// FromDeclarations builds a Document holding decls, for instance the
// normalized form of several roots.
func FromDeclarations(roots []string, decls ...schema.Declaration) *Document {
	doc := &Document{Version: CurrentVersion, Roots: roots}

	for _, d := range decls {
		dd := DeclarationDoc{Name: d.Name, Body: *EncodeExpr(d.Body)}

		for _, p := range d.Params {
			pd := ParamDoc{Name: p.Name}
			if p.Constraint != nil {
				pd.Extends = EncodeExpr(p.Constraint)
			}

			dd.Params = append(dd.Params, pd)
		}

		doc.Declarations = append(doc.Declarations, dd)
	}

	return doc
}
