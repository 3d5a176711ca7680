package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/knitworks/pattern-analyzer/internal/analysis"
	"github.com/knitworks/pattern-analyzer/internal/common"
	"github.com/knitworks/pattern-analyzer/internal/convert"
	"github.com/knitworks/pattern-analyzer/internal/ledger"
	"github.com/knitworks/pattern-analyzer/internal/vision"
)

// analyze runs one document through the pipeline from the command line,
// using the local sqlite ledger only. Handy for trying out a pattern
// without a running server or a Postgres instance.
func main() {
	var (
		userID     = flag.String("user", "local", "user id to charge")
		ledgerPath = flag.String("ledger", "./ledger.db", "local ledger database path")
		pretty     = flag.Bool("pretty", false, "indent the JSON output")
		paginated  = flag.Bool("paginated", false, "force page-by-page analysis for PDFs")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze [flags] <pattern file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Vision.APIKey == "" {
		fmt.Fprintln(os.Stderr, "ANTHROPIC_API_KEY is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", path, err)
		os.Exit(1)
	}

	local, err := ledger.OpenLocal(*ledgerPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening ledger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = local.Close() }()

	creditLedger := ledger.New(nil, local, logger)
	visionClient := vision.NewClient(cfg.Vision, logger)
	converter := convert.NewConverter(cfg.Converter, logger)
	orchestrator := analysis.NewOrchestrator(visionClient, creditLedger, converter, nil, logger)

	res, err := orchestrator.Analyze(ctx, analysis.Request{
		UserID:    *userID,
		FileName:  filepath.Base(path),
		Data:      data,
		Paginated: *paginated,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed (%s): %v\n", common.ReasonKey(err), err)
		if common.CreditUsed(err) {
			fmt.Fprintln(os.Stderr, "note: a credit was spent on this attempt")
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res.Analysis); err != nil {
		fmt.Fprintf(os.Stderr, "encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "credits remaining: %d\n", res.CreditsRemaining)
}
