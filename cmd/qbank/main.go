// Command qbank imports interview questions from markdown study documents
// into a local catalog.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/fs"
	"github.com/fwojciec/qbank/goquery"
	"github.com/fwojciec/qbank/htmltomarkdown"
	qbankhttp "github.com/fwojciec/qbank/http"
	"github.com/fwojciec/qbank/ingest"
	qslog "github.com/fwojciec/qbank/slog"
	"github.com/fwojciec/qbank/sqlite"
	"github.com/fwojciec/qbank/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Questions is the catalog, exposed for end-to-end tests.
	Questions qbank.QuestionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("qbank"),
		kong.Description("Parse study documents into a catalog of interview questions."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'qbank --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Fetcher = qslog.NewLoggingFetcher(&ingest.Router{
		Remote: qbankhttp.NewFetcher(),
		Local:  fs.NewFetcher(),
	}, deps.Logger)
	deps.Extractor = ingest.ExtractorChain{goquery.NewExtractor(), trafilatura.NewExtractor()}
	deps.Converter = htmltomarkdown.NewConverter()

	if needsCatalog(kongCtx.Command(), cli) {
		if err := ensureDir(m.DBPath); err != nil {
			return err
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set QBANK_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Questions = qslog.NewLoggingQuestionService(sqlite.NewQuestionService(m.DB), deps.Logger)
		deps.Questions = m.Questions
	}

	return kongCtx.Run(deps)
}

// needsCatalog reports whether command reads or writes the database.
func needsCatalog(command string, cli *CLI) bool {
	switch {
	case strings.HasPrefix(command, "parse"):
		return false
	case strings.HasPrefix(command, "import") && cli.Import.DryRun:
		return false
	}
	return true
}

func defaultDBPath() string {
	if path := os.Getenv("QBANK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "qbank.db"
	}
	return filepath.Join(home, ".qbank", "qbank.db")
}

func ensureDir(dbPath string) error {
	if dbPath == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}
