package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yousemazhar/crashboard/dataset"
	"github.com/yousemazhar/crashboard/engine"
	"github.com/yousemazhar/crashboard/query"
	"github.com/yousemazhar/crashboard/render"
	"github.com/yousemazhar/crashboard/server"
)

// ============================================================================
// CRASHBOARD CLI — Collision analytics over a cleaned crash CSV
// ============================================================================

const version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	filePath := flag.String("file", getEnv("CRASHBOARD_FILE", ""), "Path to cleaned collision CSV (required)")
	serve := flag.Bool("serve", false, "Serve the dashboard API over HTTP")
	addr := flag.String("addr", getEnv("CRASHBOARD_ADDR", ":8050"), "Listen address for -serve")
	queryStr := flag.String("query", "", "Free-text search, e.g. \"Brooklyn 2022 pedestrian\"")
	format := flag.String("format", "json", "Output format: json, pretty, text")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	renderDir := flag.String("render", "", "Also render report charts as PNGs into this directory")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `crashboard — NYC collision analytics

Usage:
  crashboard -file crashes.csv -serve
  crashboard -file crashes.csv -query "Manhattan weekend taxi injured"
  crashboard -file crashes.csv -query "fatal cyclist 2023" -render ./charts
  crashboard -file crashes.csv -format text

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  CRASHBOARD_FILE   Default for -file
  CRASHBOARD_ADDR   Default for -addr

Formats:
  json      Full JSON report (default)
  pretty    Pretty-printed JSON
  text      Summary table and insight lines only
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("crashboard %s\n", version)
		os.Exit(0)
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		flag.Usage()
		os.Exit(1)
	}

	// The dataset is a startup precondition: a bad file aborts the process
	// before any request can be served.
	start := time.Now()
	table, err := dataset.Load(*filePath)
	if err != nil {
		fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("Data loaded: %s records in %s", engine.FormatInt(table.Len()), time.Since(start).Round(time.Millisecond))

	if *serve {
		runServer(table, *addr)
		return
	}

	// One-shot report mode.
	criteria := engine.DefaultCriteria()
	var applied []string
	if *queryStr != "" {
		result, ok := query.Parse(*queryStr)
		if !ok {
			fatalf("No filters detected in query %q", *queryStr)
		}
		criteria = result.Criteria
		applied = result.Applied
		log.Printf("Applied filters: %s", strings.Join(applied, "; "))
	}

	report := engine.BuildReport(engine.NewView(table), criteria, engine.ReportOptions{})

	if *renderDir != "" {
		if err := render.ReportPNGs(report, *renderDir); err != nil {
			log.Printf("Render failed: %v", err)
		} else {
			log.Printf("Charts written to %s", *renderDir)
		}
	}

	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	switch *format {
	case "text":
		writeText(writer, report, applied)
	default:
		out := cliOutput{
			Query:    *queryStr,
			Applied:  applied,
			Criteria: criteria,
			Report:   report,
		}
		writeJSON(writer, out, *format)
	}
}

// ============================================================================
// SERVE MODE
// ============================================================================

func runServer(table *dataset.Table, addr string) {
	app := server.NewApp(table)

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

// ============================================================================
// OUTPUT
// ============================================================================

type cliOutput struct {
	Query    string          `json:"query,omitempty"`
	Applied  []string        `json:"applied,omitempty"`
	Criteria engine.Criteria `json:"criteria"`
	Report   *engine.Report  `json:"report"`
}

func writeText(w *os.File, report *engine.Report, applied []string) {
	if len(applied) > 0 {
		fmt.Fprintln(w, "Filters: "+strings.Join(applied, "; "))
	}
	if report.NoData {
		fmt.Fprintln(w, report.Message)
		return
	}

	fmt.Fprintln(w, report.SummaryTable.Title)
	for _, row := range report.SummaryTable.Rows {
		fmt.Fprintf(w, "  %-22s %s\n", row[0], row[1])
	}
	fmt.Fprintln(w)
	for i, insight := range report.Insights {
		fmt.Fprintf(w, "%s: %s\n", report.Charts[i].Title, insight)
	}
}

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

// ============================================================================
// HELPERS
// ============================================================================

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
