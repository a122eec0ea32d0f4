// Command goeda loads a transaction dataset from a CSV or XLSX file, runs
// the full exploratory analysis report, and optionally serves the result
// over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"goeda/adapters/csvfile"
	"goeda/adapters/excel"
	"goeda/domain/dataset"
	"goeda/internal"
	"goeda/internal/config"
	"goeda/internal/eda"
	"goeda/internal/report"
)

func main() {
	input := flag.String("input", "", "CSV or XLSX transaction file (overrides GOEDA_INPUT)")
	outDir := flag.String("out", "", "report output directory (overrides GOEDA_OUT_DIR)")
	serve := flag.Bool("serve", false, "serve the generated report over HTTP")
	flag.Parse()

	log := internal.DefaultLogger

	cfg, err := config.Load(config.Overrides{InputFile: *input, OutDir: *outDir})
	if err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		log.Error("failed to load dataset from %s: %v", cfg.Data.InputFile, err)
		os.Exit(1)
	}
	log.Info("loaded dataset: %d rows, %d columns", ds.Rows(), len(ds.Columns()))

	generator := report.NewGenerator(eda.New(ds), cfg.Report.OutDir)
	result, err := generator.Run(context.Background())
	if err != nil {
		log.Error("report generation failed: %v", err)
		os.Exit(1)
	}
	log.Info("report written to %s", result.Dir)

	if *serve {
		if err := report.NewServer(result.Dir).ListenAndServe(":" + cfg.Server.Port); err != nil {
			log.Error("report server stopped: %v", err)
			os.Exit(1)
		}
	}
}

func loadDataset(cfg *config.Config) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(cfg.Data.InputFile)) {
	case ".xlsx", ".xlsm":
		return excel.NewReader(cfg.Data.InputFile, cfg.Data.Sheet).Read()
	default:
		return csvfile.NewReader(cfg.Data.InputFile).Read()
	}
}
