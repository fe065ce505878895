package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"schema-normalizer/internal/catalog"
	"schema-normalizer/internal/grammar"
	"schema-normalizer/internal/normalize"
	"schema-normalizer/internal/schema"
)

var errNoRoots = errors.New("no roots: pass --root or list roots in the document")

type NormalizeCmd struct {
	File   string   `arg:"" type:"existingfile" help:"Grammar document (YAML)."`
	Root   []string `help:"Root declaration to normalize (repeatable). Defaults to the document roots." short:"r"`
	Format string   `help:"Output format." enum:"text,yaml" default:"text" short:"f"`
	Dump   bool     `help:"Dump the raw results instead of formatting them."`
}

func (c *NormalizeCmd) Run(g *Globals, w io.Writer) error {
	batch, err := normalizeFile(g, c.File, c.Root)
	if err != nil {
		return err
	}

	if err := batch.Err(); err != nil {
		return err
	}

	if c.Dump {
		spew.Fdump(w, batch.Results)
		return nil
	}

	if c.Format == "yaml" {
		data, err := grammar.MarshalOutput(grammar.NewOutput(batch.Aliases, batch.Results...))
		if err != nil {
			return err
		}

		_, err = w.Write(data)

		return err
	}

	return writeText(w, batch)
}

type CheckCmd struct {
	File string   `arg:"" type:"existingfile" help:"Grammar document (YAML)."`
	Root []string `help:"Root declaration to check (repeatable). Defaults to the document roots." short:"r"`
}

func (c *CheckCmd) Run(g *Globals, w io.Writer) error {
	batch, err := normalizeFile(g, c.File, c.Root)
	if err != nil {
		return err
	}

	for _, d := range batch.Diagnostics.Errors {
		fmt.Fprintln(w, "error: "+d.String())
	}

	for _, d := range batch.Diagnostics.Warnings {
		fmt.Fprintln(w, "warning: "+d.String())
	}

	if batch.Diagnostics.HasErrors() {
		return fmt.Errorf("%d of %d roots failed", len(batch.Failures), len(batch.Roots))
	}

	fmt.Fprintf(w, "ok: %d roots, %d aliases, %d warnings\n",
		len(batch.Roots), batch.Aliases.Len(), len(batch.Diagnostics.Warnings))

	return nil
}

type CatalogCmd struct {
	File string   `arg:"" type:"existingfile" help:"Grammar document (YAML)."`
	Root []string `help:"Catalog the declarations reachable from this root (repeatable). Defaults to the document roots, then to every declaration." short:"r"`
}

func (c *CatalogCmd) Run(g *Globals, w io.Writer) error {
	doc, n, err := load(g, c.File)
	if err != nil {
		return err
	}

	roots := c.Root
	if len(roots) == 0 {
		roots = doc.Roots
	}

	var names []string

	if len(roots) > 0 {
		batch, err := n.NormalizeAll(context.Background(), roots)
		if err != nil {
			return err
		}

		if err := batch.Err(); err != nil {
			return err
		}

		names = catalog.Reachable(batch.Results...)
	}

	cat, err := catalog.Build(n, names)
	if err != nil {
		return err
	}

	log := g.Logger()
	for _, lit := range cat.DuplicateNames() {
		log.Warn("name claimed by several declarations",
			slog.String("name", lit),
			slog.Any("declarations", cat.Duplicates[lit]),
		)
	}

	data, err := yaml.Marshal(cat)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	_, err = w.Write(data)

	return err
}

func load(g *Globals, path string) (*grammar.Document, *normalize.Normalizer, error) {
	doc, err := grammar.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	table, err := doc.Table()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	config := normalize.DefaultConfig()
	config.Logger = g.Logger()

	if g.Jobs > 0 {
		config.MaxConcurrency = g.Jobs
	}

	return doc, normalize.New(table, config), nil
}

func normalizeFile(g *Globals, path string, roots []string) (*normalize.Batch, error) {
	doc, n, err := load(g, path)
	if err != nil {
		return nil, err
	}

	if len(roots) == 0 {
		roots = doc.Roots
	}

	if len(roots) == 0 {
		return nil, errNoRoots
	}

	return n.NormalizeAll(context.Background(), roots)
}

// writeText prints each root as a type alias, then the merged alias index.
func writeText(w io.Writer, batch *normalize.Batch) error {
	var sb strings.Builder

	for _, r := range batch.Results {
		fmt.Fprintf(&sb, "type %s = %s;\n", r.Root, schema.Format(r.Schema))
	}

	if entries := batch.Aliases.Entries(); len(entries) > 0 {
		sb.WriteString("\naliases:\n")

		for _, e := range entries {
			sb.WriteString("  " + schema.FormatLiteral(&e.Value))

			if aliases := e.SortedAliases(); len(aliases) > 0 {
				quoted := make([]string, len(aliases))
				for i, a := range aliases {
					quoted[i] = strconv.Quote(a)
				}

				sb.WriteString(" [" + strings.Join(quoted, ",") + "]")
			}

			if e.Default {
				sb.WriteString(" default")
			}

			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
