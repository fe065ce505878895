// Package main provides the CLI entrypoint for schema-normalizer.
//
// schema-normalizer reads a YAML grammar document and:
//   - normalizes root declarations into their canonical form
//   - collects the alias metadata stripped from literal wrappers
//   - checks a grammar for structural defects
//   - catalogs the name literals of product declarations
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Globals

	Normalize NormalizeCmd `cmd:"" help:"Normalize root declarations and print the canonical schema."`
	Check     CheckCmd     `cmd:"" help:"Normalize every root and report grammar defects."`
	Catalog   CatalogCmd   `cmd:"" help:"Catalog name literals and optional fields of product declarations."`
	Version   VersionCmd   `cmd:"" help:"Print version information."`
}

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"warn" env:"SCHEMA_NORMALIZER_LOG_LEVEL"`
	Jobs     int    `help:"Roots normalized concurrently (0 = number of CPUs)." default:"0" short:"j"`
}

// Logger builds the logger selected by --log-level. Logs go to stderr.
func (g *Globals) Logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		level = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

type VersionCmd struct{}

func (c *VersionCmd) Run(w io.Writer) error {
	_, err := io.WriteString(w, Version()+"\n")
	return err
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("schema-normalizer"),
		kong.Description("Normalize generic grammar schemas into their canonical form."),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
