package normalize

import (
	"log/slog"
	"runtime"

	"github.com/hashicorp/go-set/v3"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/schema"
)

// Config holds configuration for normalization.
type Config struct {
	// Logger receives debug traces of each run. Nil means slog.Default().
	Logger *slog.Logger
	// MaxConcurrency bounds the roots NormalizeAll runs at once (0 = unlimited).
	MaxConcurrency int
}

// DefaultConfig returns the default normalization configuration.
func DefaultConfig() Config {
	return Config{
		Logger:         slog.Default(),
		MaxConcurrency: runtime.GOMAXPROCS(0),
	}
}

// Normalizer runs normalizations against one read-only Table.
// It is safe for concurrent use.
type Normalizer struct {
	table  *Table
	config Config
}

// New creates a Normalizer over table.
func New(table *Table, config Config) *Normalizer {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Normalizer{table: table, config: config}
}

// Table returns the declaration table the normalizer reads from.
func (n *Normalizer) Table() *Table {
	return n.table
}

// Result is the outcome of one successful run.
type Result struct {
	// Root is the normalized declaration ("" for a standalone expression).
	Root string
	// Schema is the canonical tree.
	Schema schema.Expr
	// Aliases holds the metadata stripped from the tree's wrappers.
	Aliases *AliasIndex
	// Reachable lists the declarations expanded, in first-visit order.
	Reachable []string
	// Diagnostics holds the warnings raised by the run.
	Diagnostics diagnostic.Diagnostics
}

// CodeUnindexedAlternative flags a wrapper whose display has alternatives
// that are not literals, so no alias entry records them.
const CodeUnindexedAlternative = "unindexed-alternative"

// Normalize resolves the declaration root. A generic root is normalized as
// a reference without arguments, so every parameter takes its constraint.
func (n *Normalizer) Normalize(root string) (*Result, error) {
	return n.normalize(root, schema.Ref(root))
}

// NormalizeExpr normalizes a standalone expression against the table.
// An expression that is already normalized comes back unchanged with an
// empty index, except that nested unions are flattened and unions of one
// alternative are replaced by that alternative. The formatted text is the
// same either way.
func (n *Normalizer) NormalizeExpr(e schema.Expr) (*Result, error) {
	return n.normalize("", e)
}

func (n *Normalizer) normalize(root string, e schema.Expr) (*Result, error) {
	log := n.config.Logger.With(slog.String("root", root))
	log.Debug("normalization started")

	r := newRun(root, n.table, log)
	path := schema.NewPath(root)

	out, err := r.substitute(e, Env{}, path)
	if err == nil {
		err = Validate(out, root)
	}

	if err != nil {
		log.Debug("normalization failed", slog.Any("error", err))
		return nil, err
	}

	log.Debug("normalization completed",
		slog.Int("declarations", len(r.reachable)),
		slog.Int("aliases", r.index.Len()),
	)

	return &Result{
		Root:        root,
		Schema:      out,
		Aliases:     r.index,
		Reachable:   r.reachable,
		Diagnostics: r.diags,
	}, nil
}

// run is the mutable state of a single normalization.
type run struct {
	root      string
	table     *Table
	logger    *slog.Logger
	index     *AliasIndex
	stack     []frame
	reached   *set.Set[string]
	reachable []string
	diags     diagnostic.Diagnostics
}

func newRun(root string, table *Table, logger *slog.Logger) *run {
	return &run{
		root:    root,
		table:   table,
		logger:  logger,
		index:   NewAliasIndex(),
		reached: set.New[string](table.Len()),
	}
}

func (r *run) reach(name string) {
	if r.reached.Insert(name) {
		r.reachable = append(r.reachable, name)
	}
}
