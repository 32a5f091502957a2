package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/expensewise/sms-parser/internal/api"
	"github.com/expensewise/sms-parser/internal/config"
	"github.com/expensewise/sms-parser/internal/ingest"
	"github.com/expensewise/sms-parser/internal/logger"
	"github.com/expensewise/sms-parser/internal/models"
	"github.com/expensewise/sms-parser/internal/registry"
	"github.com/expensewise/sms-parser/internal/writer"
)

const version = "1.0.0"

func main() {
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of the CLI batch mode")
	configFlag := flag.String("config", "", "Config file path (serve mode)")
	outputFlag := flag.String("output", "", "Output file path (defaults to the input filename with the format's extension)")
	formatFlag := flag.String("format", "csv", "Output format: csv or jsonl")
	rawFlag := flag.Bool("raw", false, "Include the raw message body in the output")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `SMS Transaction Parser

Scans bank, card and mobile-money SMS notifications and extracts
normalized transaction records.

Usage:
  sms-parser [flags] <backup.xml> [backup2.xml ...]
  sms-parser -serve [-config config.yaml]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Scan an SMS Backup & Restore export and write transactions.csv
  sms-parser backup.xml

  # Custom output path, raw bodies included
  sms-parser --output=transactions.csv --raw backup.xml

  # One JSON record per line instead of CSV
  sms-parser --format=jsonl backup.xml

  # Run the HTTP API on :8080
  sms-parser -serve
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("sms-parser v%s\n", version)
		os.Exit(0)
	}

	if *serveFlag {
		serve(*configFlag)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	if *formatFlag != "csv" && *formatFlag != "jsonl" {
		fmt.Fprintf(os.Stderr, "unknown format %q (want csv or jsonl)\n", *formatFlag)
		os.Exit(2)
	}

	reg := registry.New()
	for _, inputPath := range flag.Args() {
		if err := processFile(reg, inputPath, *outputFlag, *formatFlag, *rawFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

// txnWriter is satisfied by both output formats.
type txnWriter interface {
	WriteToFile(path string, txns []*models.Transaction) error
}

func processFile(reg *registry.Registry, inputPath, outputPath, format string, includeRaw bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	msgs, err := ingest.ReadBackup(inputPath)
	if err != nil {
		return fmt.Errorf("backup read failed: %w", err)
	}
	fmt.Printf("  Read %d message(s)\n", len(msgs))

	var txns []*models.Transaction
	seen := make(map[string]bool)
	for _, m := range msgs {
		txn := reg.Parse(m.Body, m.Sender, m.Timestamp)
		if txn == nil {
			continue
		}
		// Same message observed through two delivery channels collapses
		// to one fingerprint.
		id := txn.GenerateID()
		if seen[id] {
			continue
		}
		seen[id] = true
		txns = append(txns, txn)
	}

	writer.Summarize(txns).Print(os.Stdout)
	if len(txns) == 0 {
		fmt.Println("  Warning: no transactions found. The backup may not contain bank notifications.")
	}

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + "." + format
	}

	var w txnWriter
	if format == "jsonl" {
		w = &writer.JSONLWriter{IncludeRaw: includeRaw}
	} else {
		w = &writer.CSVWriter{IncludeRaw: includeRaw}
	}
	if err := w.WriteToFile(outPath, txns); err != nil {
		return fmt.Errorf("%s write failed: %w", strings.ToUpper(format), err)
	}

	fmt.Printf("  Output: %s\n", outPath)
	return nil
}

func serve(configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logger.Level, cfg.Logger.Pretty)
	h := &api.Handler{Registry: registry.New(), Log: log}
	app := api.NewApp(h)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Server.Addr).Int("parsers", h.Registry.Len()).Msg("starting sms-parser API")
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
