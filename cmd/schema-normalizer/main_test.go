package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"schema-normalizer/internal/catalog"
	"schema-normalizer/internal/grammar"
)

var menu = filepath.Join("..", "..", "internal", "grammar", "testdata", "menu.yaml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var (
		cli CLI
		out bytes.Buffer
	)

	parser, err := kong.New(&cli,
		kong.Name("schema-normalizer"),
		kong.Exit(func(int) {}),
		kong.BindTo(&out, (*io.Writer)(nil)),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}

	err = ctx.Run(&cli.Globals)

	return out.String(), err
}

func writeGrammar(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "grammar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func TestNormalize_Text(t *testing.T) {
	out, err := run(t, "normalize", menu, "--root", "Ice", "--root", "CHOOSE")
	require.NoError(t, err)

	assert.Equal(t, `type Ice = {name:"Ice",amount:"Regular"|"Light"|"No"};
type CHOOSE = "CHOOSE";

aliases:
  "CHOOSE" default
`, out)
}

func TestNormalize_TextWithAliases(t *testing.T) {
	out, err := run(t, "normalize", menu, "-r", "Condiments")
	require.NoError(t, err)

	assert.Contains(t, out, `type Condiments = {amount:"No"|"Light"|"Regular"|"Extra",name:"Ketchup"|"Mustard"|"Mayo"|"BBQ"};`)
	assert.Contains(t, out, `  "Mayo" ["hellmanns","mayonnaise"]`+"\n")
	assert.Contains(t, out, `  "Regular" default`+"\n")
}

func TestNormalize_YAML(t *testing.T) {
	out, err := run(t, "normalize", menu, "--format", "yaml")
	require.NoError(t, err)

	parsed, err := grammar.ParseOutput([]byte(out))
	require.NoError(t, err)

	require.Len(t, parsed.Results, 1)
	assert.Equal(t, "Cart", parsed.Results[0].Root)
	assert.Len(t, parsed.Aliases, 25)
}

func TestNormalize_Dump(t *testing.T) {
	out, err := run(t, "normalize", menu, "-r", "CHOOSE", "--dump")
	require.NoError(t, err)

	assert.Contains(t, out, "normalize.Result")
	assert.Contains(t, out, `Text: (string) (len=6) "CHOOSE"`)
}

func TestNormalize_Failure(t *testing.T) {
	_, err := run(t, "normalize", menu, "-r", "Amounts")
	assert.ErrorContains(t, err, "DuplicateUnionAlternative")
}

func TestNormalize_NoRoots(t *testing.T) {
	path := writeGrammar(t, `
declarations:
  - name: A
    body: a
`)

	_, err := run(t, "normalize", path)
	assert.ErrorIs(t, err, errNoRoots)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", menu)
	require.NoError(t, err)
	assert.Equal(t, "ok: 1 roots, 25 aliases, 0 warnings\n", out)

	out, err = run(t, "check", menu, "-r", "Cart", "-r", "Amounts", "-r", "Nope")
	assert.EqualError(t, err, "2 of 3 roots failed")
	assert.Contains(t, out, "error: [Amounts] Amounts: [DuplicateUnionAlternative]")
	assert.Contains(t, out, `error: [Nope] Nope: [UnknownDeclaration] "Nope": no such declaration`)
}

func TestCheck_ReportsWarnings(t *testing.T) {
	path := writeGrammar(t, `
roots: [Note]
declarations:
  - name: Note
    body:
      product:
        text: {literal: {value: [none, {primitive: string}], aliases: [nothing]}}
`)

	out, err := run(t, "check", path)
	require.NoError(t, err)

	assert.Contains(t, out, "warning: [Note] Note.text: [unindexed-alternative] 1 non-literal alternatives")
	assert.Contains(t, out, "ok: 1 roots, 1 aliases, 1 warnings\n")
}

func TestCheck_InvalidDocument(t *testing.T) {
	path := writeGrammar(t, `
version: "2"
declarations:
  - name: A
    body: a
`)

	_, err := run(t, "check", path)
	assert.Error(t, err)
}

func TestCatalog(t *testing.T) {
	out, err := run(t, "catalog", menu)
	require.NoError(t, err)

	var c catalog.Catalog
	require.NoError(t, yaml.Unmarshal([]byte(out), &c))

	assert.Equal(t, "FountainDrink", c.Types["Sprite"])
	assert.Equal(t, []string{"Extras", "FrenchFries"}, c.Duplicates["Onion Rings"])
	assert.Contains(t, c.Skipped, "GenericWiseguy")
}

func TestCatalog_AllDeclarations(t *testing.T) {
	path := writeGrammar(t, `
declarations:
  - name: Ice
    body:
      product:
        name: Ice
        amount?: [Light, "No"]
`)

	out, err := run(t, "catalog", path)
	require.NoError(t, err)

	var c catalog.Catalog
	require.NoError(t, yaml.Unmarshal([]byte(out), &c))

	assert.Equal(t, map[string]string{"Ice": "Ice"}, c.Types)
	assert.Equal(t, map[string][]string{"Ice": {"amount"}}, c.Defaults)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "0.1.0")
}

func TestUnknownLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "version")
	assert.Error(t, err)
}
