package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/qbank"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Questions qbank.QuestionService
	Fetcher   qbank.Fetcher
	Extractor qbank.Extractor
	Converter qbank.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Import ImportCmd `cmd:"" help:"Import questions from configured sources"`
	Parse  ParseCmd  `cmd:"" help:"Parse one document and print its questions"`
	List   ListCmd   `cmd:"" help:"List questions in the catalog"`
	Show   ShowCmd   `cmd:"" help:"Show one question"`
	Export ExportCmd `cmd:"" help:"Export the catalog as markdown files"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Config      string   `short:"c" help:"Run configuration file (YAML)"`
	Source      []string `short:"s" sep:"none" help:"Source as location=category (repeatable)"`
	Mode        string   `short:"m" help:"Ingestion mode: create-only or upsert"`
	Depth       int      `short:"d" help:"Heading depth of question boundaries (2 or 3)"`
	Rules       string   `help:"Classifier rules file (YAML)"`
	Concurrency int      `default:"4" help:"Concurrent fetch limit"`
	Report      string   `short:"r" help:"Write a JSON run report to this file"`
	Render      bool     `help:"Render remote pages in headless Chrome"`
	DryRun      bool     `help:"Parse and score without writing to the catalog"`
	NoScore     bool     `help:"Skip quality scoring"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File     string `arg:"" help:"Markdown document or URL"`
	Category string `required:"" help:"Category of the document's questions"`
	Depth    int    `short:"d" default:"3" help:"Heading depth of question boundaries (2 or 3)"`
	Rules    string `help:"Classifier rules file (YAML)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category   string `help:"Only questions in this category"`
	Difficulty string `help:"Only questions of this difficulty"`
	Limit      int    `default:"50" help:"Maximum number of questions"`
	Offset     int    `help:"Number of questions to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Slug string `arg:"" help:"Question slug"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir      string `arg:"" help:"Output directory"`
	Category string `help:"Only questions in this category"`
}
