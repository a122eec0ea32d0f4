// Package report drives the analyzer as a batch: it runs every reporting
// operation against one dataset, persists the text output and rendered
// figures under a run directory, and assembles a markdown report tying them
// together. Figure persistence lives here, outside the analyzer itself.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"goeda/internal"
	"goeda/internal/eda"
	"goeda/internal/errors"
)

// Result describes one generated report run
type Result struct {
	ID           string
	Dir          string
	MarkdownFile string
	TextFiles    []string
	Figures      []string
}

// Generator writes a full analysis report for one dataset
type Generator struct {
	analyzer *eda.Analyzer
	outDir   string
	log      *internal.Logger
}

// NewGenerator creates a generator writing under outDir
func NewGenerator(analyzer *eda.Analyzer, outDir string) *Generator {
	return &Generator{
		analyzer: analyzer,
		outDir:   outDir,
		log:      internal.DefaultLogger,
	}
}

type textSection struct {
	title string
	file  string
	run   func(w io.Writer) error
}

type figureJob struct {
	title string
	file  string
	run   func(w io.Writer) error
}

// Run executes every reporting operation and writes the results under a
// fresh run directory. Text sections run sequentially; figures render
// concurrently since each operation reads the dataset independently.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	runID := newRunID()
	dir := filepath.Join(g.outDir, runID)
	figureDir := filepath.Join(dir, "figures")
	if err := os.MkdirAll(figureDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create report directory")
	}
	g.log.Info("generating report %s in %s", runID, dir)

	a := g.analyzer
	sections := []textSection{
		{"Basic Overview", "overview.txt", a.BasicOverview},
		{"Summary Statistics", "summary.txt", a.SummaryStatistics},
		{"Missing Values", "missing.txt", a.MissingValues},
	}
	figures := []figureJob{
		{"Numerical Distributions", "numerical_distribution.png", a.NumericalDistribution},
		{"Skewness", "skewness.png", a.DescribeSkewness},
		{"Categorical Distributions", "categorical_distribution.png", a.CategoricalDistribution},
		{"Correlation Heatmap", "correlation_heatmap.png", a.CorrelationAnalysis},
		{"Outlier Box Plot", "outlier_boxplot.png", a.OutlierBoxPlot},
		{"Outlier Counts", "outlier_counts.png", a.CountOutliers},
		{"Fraud Amount Bins", "fraud_amount_bins.png", a.FraudAnalysis},
	}

	result := &Result{ID: runID, Dir: dir, MarkdownFile: filepath.Join(dir, "report.md")}
	sectionBodies := make([]string, len(sections))
	for i, section := range sections {
		var buf bytes.Buffer
		if err := section.run(&buf); err != nil {
			return nil, errors.Wrapf(err, "section %s failed", section.title)
		}
		path := filepath.Join(dir, section.file)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", section.file)
		}
		result.TextFiles = append(result.TextFiles, path)
		sectionBodies[i] = buf.String()
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, job := range figures {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := job.run(&buf); err != nil {
				return errors.Wrapf(err, "figure %s failed", job.title)
			}
			return os.WriteFile(filepath.Join(figureDir, job.file), buf.Bytes(), 0o644)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for _, job := range figures {
		result.Figures = append(result.Figures, filepath.Join(figureDir, job.file))
	}

	markdown := buildMarkdown(runID, sections, sectionBodies, figures)
	if err := os.WriteFile(result.MarkdownFile, []byte(markdown), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write report.md")
	}

	g.log.Info("report %s complete: %d text sections, %d figures", runID, len(sections), len(figures))
	return result, nil
}

func buildMarkdown(runID string, sections []textSection, bodies []string, figures []figureJob) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Transaction Data Analysis Report\n\nRun `%s`\n", runID)
	for i, section := range sections {
		fmt.Fprintf(&sb, "\n## %s\n\n```\n%s```\n", section.title, bodies[i])
	}
	for _, job := range figures {
		fmt.Fprintf(&sb, "\n## %s\n\n![%s](figures/%s)\n", job.title, job.title, job.file)
	}
	return sb.String()
}

// newRunID returns a time-ordered unique ID for a report run
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
