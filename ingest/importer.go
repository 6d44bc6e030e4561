package ingest

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/bloom"
	"github.com/fwojciec/qbank/parse"
	"github.com/fwojciec/qbank/quality"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of documents fetched at once.
const DefaultConcurrency = 4

// Importer runs the whole pipeline: fetch every source, parse it, score the
// questions and hand them to a Coordinator.
type Importer struct {
	Fetcher   qbank.Fetcher
	Questions qbank.QuestionService

	// Extractor and Converter turn HTML bodies into markdown. HTML is passed
	// through unchanged when either is nil.
	Extractor qbank.Extractor
	Converter qbank.Converter

	// Scorer rates each question; scoring is skipped when nil.
	Scorer *quality.Scorer

	// Limiter throttles fetches per host; no throttling when nil.
	Limiter *HostLimiter

	Concurrency int

	// DryRun parses and scores without touching Questions.
	DryRun bool

	Logger *slog.Logger
}

// NewImporter returns an Importer with default concurrency, retrying fetches
// with the default delays, limiting each host and scoring with the default rubric.
func NewImporter(fetcher qbank.Fetcher, questions qbank.QuestionService, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		Fetcher:     NewRetryFetcher(fetcher, logger),
		Questions:   questions,
		Scorer:      quality.NewScorer(nil),
		Limiter:     NewHostLimiter(DefaultRequestsPerSecond),
		Concurrency: DefaultConcurrency,
		Logger:      logger,
	}
}

// Import runs cfg. An invalid configuration is the only error returned, and
// it is returned before anything is fetched. Failed fetches, rejected blocks
// and failed writes are logged and recorded in the Report.
func (imp *Importer) Import(ctx context.Context, cfg qbank.Config) (*Report, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := imp.logger()
	report := &Report{
		StartedAt: time.Now().UTC(),
		Mode:      cfg.Mode,
		DryRun:    imp.DryRun,
	}

	sources := imp.dedupe(cfg.Sources)
	report.DocumentsTotal = len(sources)

	docs := imp.fetchAll(ctx, sources)

	parser := parse.NewParser(cfg.BoundaryDepth, cfg.Rules, log)
	var (
		questions []*qbank.Question
		entries   []*QuestionReport
		slugs     = make(map[string]string)
	)
	for i, src := range sources {
		dr := &DocumentReport{Location: src.Location, Category: src.Category}
		report.Documents = append(report.Documents, dr)

		if docs[i].err != nil {
			dr.Error = docs[i].err.Error()
			continue
		}
		report.DocumentsFetched++

		res := parser.Parse(qbank.RawDocument{Location: src.Location, Category: src.Category, Text: docs[i].text})
		dr.Rejected = res.Rejected
		report.Rejected += len(res.Rejected)

		for _, q := range res.Questions {
			if prev, ok := slugs[q.Slug]; ok {
				log.Warn("duplicate slug in run", "slug", q.Slug, "title", q.Title, "first_location", prev, "location", src.Location)
			} else {
				slugs[q.Slug] = src.Location
			}

			qr := newQuestionReport(q)
			if imp.Scorer != nil {
				qr.Quality = imp.Scorer.Score(q)
				score := qr.Quality.Score
				q.QualityScore = &score
			}
			dr.Questions = append(dr.Questions, qr)
			questions = append(questions, q)
			entries = append(entries, qr)
		}
	}

	if !imp.DryRun {
		res := NewCoordinator(imp.Questions, cfg.Mode, log).Ingest(ctx, questions)
		report.Created = res.Created
		report.Updated = res.Updated
		report.Skipped = res.Skipped
		report.Failed = res.Failed
		for i, o := range res.Outcomes {
			entries[i].Outcome = o.Action
			if o.Err != nil {
				entries[i].Error = o.Err.Error()
			}
		}
	}

	report.FinishedAt = time.Now().UTC()
	log.Info("import finished",
		"created", report.Created, "updated", report.Updated, "skipped", report.Skipped,
		"failed", report.Failed, "rejected", report.Rejected,
		"documents", report.DocumentsFetched, "documents_total", report.DocumentsTotal)
	return report, nil
}

// dedupe drops repeated locations, keeping the first occurrence. The bloom
// filter answers most lookups; a positive is confirmed against the kept list.
func (imp *Importer) dedupe(sources []qbank.Source) []qbank.Source {
	filter := bloom.NewFilter(uint(max(len(sources), 16)), 0.001)
	kept := make([]qbank.Source, 0, len(sources))
	for _, src := range sources {
		if filter.Seen(src.Location) && slices.ContainsFunc(kept, func(k qbank.Source) bool { return k.Location == src.Location }) {
			imp.logger().Warn("duplicate source location", "location", src.Location, "category", src.Category)
			continue
		}
		kept = append(kept, src)
	}
	return kept
}

type fetched struct {
	text string
	err  error
}

// fetchAll fetches every source concurrently. Results are indexed like
// sources; a failure is logged and stored without affecting the others.
func (imp *Importer) fetchAll(ctx context.Context, sources []qbank.Source) []fetched {
	log := imp.logger()
	docs := make([]fetched, len(sources))

	var g errgroup.Group
	g.SetLimit(max(imp.Concurrency, 1))

	for i, src := range sources {
		g.Go(func() error {
			text, err := imp.fetch(ctx, src.Location)
			if err != nil {
				log.Error("failed to fetch document", "location", src.Location, "err", err)
			} else {
				log.Info("fetched document", "location", src.Location, "bytes", len(text))
			}
			docs[i] = fetched{text: text, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return docs
}

func (imp *Importer) fetch(ctx context.Context, location string) (string, error) {
	if imp.Limiter != nil {
		if host := hostOf(location); host != "" {
			if err := imp.Limiter.Wait(ctx, host); err != nil {
				return "", err
			}
		}
	}

	body, err := imp.Fetcher.Fetch(ctx, location)
	if err != nil {
		return "", err
	}
	if !looksLikeHTML(body) || imp.Extractor == nil || imp.Converter == nil {
		return body, nil
	}

	extracted, err := imp.Extractor.Extract(body)
	if err != nil {
		return "", err
	}
	return imp.Converter.Convert(extracted.ContentHTML)
}

func (imp *Importer) logger() *slog.Logger {
	if imp.Logger == nil {
		return slog.Default()
	}
	return imp.Logger
}

// looksLikeHTML reports whether body is an HTML page rather than markdown.
func looksLikeHTML(body string) bool {
	head := strings.TrimSpace(body)
	if len(head) > 512 {
		head = head[:512]
	}
	head = strings.ToLower(head)
	return strings.HasPrefix(head, "<!doctype html") ||
		strings.HasPrefix(head, "<html") ||
		strings.Contains(head, "<head>") ||
		strings.Contains(head, "<body")
}
