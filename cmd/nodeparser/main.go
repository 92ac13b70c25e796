package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nodeparser/internal/config"
	"nodeparser/internal/exporter"
	"nodeparser/internal/extract"
	"nodeparser/internal/logger"
	"nodeparser/internal/model"
	"nodeparser/internal/normalize"
	"nodeparser/internal/sheet"
	"nodeparser/internal/ui"

	"golang.org/x/term"
)

const (
	appName    = "Node Parser"
	appVersion = "1.0.0"
	appDesc    = "Normalizes node details spreadsheets and derives hierarchical JSON"
)

var (
	inputPath    string
	sheetName    string
	outputPath   string
	startVersion string
	endVersion   string
	exportJSON   bool
	enableLog    bool
	configPath   string
	verbose      bool
	showVersion  bool
	formats      string
	policy       string
)

func init() {
	flag.StringVar(&inputPath, "input", "", "Path to the input Excel file")
	flag.StringVar(&inputPath, "i", "", "Path to the input Excel file (shorthand)")
	flag.StringVar(&sheetName, "sheet", "", "Sheet name in the Excel file")
	flag.StringVar(&sheetName, "x", "", "Sheet name in the Excel file (shorthand)")
	flag.StringVar(&outputPath, "output", "", "Output Excel file path (default: <input>_<timestamp>.xlsx in the output directory)")
	flag.StringVar(&outputPath, "o", "", "Output Excel file path (shorthand)")
	flag.StringVar(&startVersion, "start-version", "", "Start version to bound the extraction window (default: first version column)")
	flag.StringVar(&startVersion, "s", "", "Start version (shorthand)")
	flag.StringVar(&endVersion, "end-version", "", "End version to bound the extraction window (default: last version column)")
	flag.StringVar(&endVersion, "e", "", "End version (shorthand)")
	flag.BoolVar(&exportJSON, "json", false, "Create the hierarchical JSON file")
	flag.BoolVar(&exportJSON, "j", false, "Create the hierarchical JSON file (shorthand)")
	flag.BoolVar(&enableLog, "log", false, "Enable logging to a timestamped file in the output directory")
	flag.BoolVar(&enableLog, "l", false, "Enable logging (shorthand)")
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&formats, "format", "", "Comma-separated report formats (json,word); overrides config")
	flag.StringVar(&policy, "policy", "", "Duplicate header row policy (highlight|delete); overrides config")
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	if inputPath == "" || sheetName == "" {
		fmt.Println(">> Both -input and -sheet are required")
		flag.Usage()
		return 1
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		fmt.Printf(">> Error: Input file '%s' does not exist.\n", inputPath)
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}
	if policy != "" {
		cfg.Process.HeaderRowPolicy = policy
	}
	if startVersion != "" {
		cfg.Process.StartVersion = startVersion
	}
	if endVersion != "" {
		cfg.Process.EndVersion = endVersion
	}
	if formats != "" {
		cfg.Output.Formats = strings.Split(formats, ",")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return 1
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}
	if verbose {
		cfg.Print()
	}

	// Resolve the normalized workbook path and the base name every exporter
	// derives its file name from.
	outFile := outputPath
	if outFile == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		stamp := time.Now().Format("20060102_150405")
		outFile = cfg.OutputPath(fmt.Sprintf("%s_%s.xlsx", base, stamp))
	}
	baseName := strings.TrimSuffix(filepath.Base(outFile), filepath.Ext(outFile))

	if enableLog {
		logPath := logger.DefaultLogPath(cfg.Output.Dir, baseName)
		if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
			fmt.Printf("❌ Failed to initialize logger: %v\n", err)
			return 1
		}
		defer logger.Close()
		fmt.Printf(">> Logging enabled. File: %s\n", logger.GetLogFilePath())
	}

	if err := runPipeline(cfg, outFile, baseName); err != nil {
		logger.Error("Processing failed: %v", err)
		return 1
	}

	logger.Info("✅ Processing complete. Check [%s] directory.", cfg.Output.Dir)
	return 0
}

func runPipeline(cfg *config.Config, outFile, baseName string) error {
	ws, err := sheet.Open(inputPath, sheetName)
	if err != nil {
		return err
	}
	defer ws.Close()

	styles, err := normalize.NewStyleSet(ws.File())
	if err != nil {
		return fmt.Errorf("failed to register styles: %w", err)
	}

	headerPolicy, err := normalize.ParsePolicy(cfg.Process.HeaderRowPolicy)
	if err != nil {
		return err
	}

	ledger := model.NewLedger()

	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseNormalizing,
		ui.PhaseExtracting,
		ui.PhaseGenerating,
	})
	// Keep log files and CI output free of bar redraws.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pipeline.Disable()
	}

	// --- Phase 1: Normalization ---
	logger.Info("Phase 1: Normalizing sheet...")
	normBar := pipeline.NextPhase(1)
	err = normalize.Process(ws, ledger, styles, normalize.Options{HeaderRowPolicy: headerPolicy})
	normBar.Increment()
	normBar.Finish()
	printIssues(ledger)
	if err != nil {
		return err
	}

	if err := ws.Save(outFile); err != nil {
		return fmt.Errorf("failed to save workbook (close it if open in Excel): %w", err)
	}
	logger.Info(">> Successfully processed '%s' -> '%s'", inputPath, outFile)

	rep := &model.Report{
		Source:      inputPath,
		Sheet:       sheetName,
		BaseName:    baseName,
		ProcessedAt: time.Now().Format("2006-01-02"),
		Ledger:      ledger,
	}

	// --- Phase 2: Extraction (only when a JSON report is requested) ---
	wantJSON := exportJSON || contains(cfg.Output.Formats, "json")
	if wantJSON {
		logger.Info("Phase 2: Extracting hierarchy...")
		extractBar := pipeline.NextPhase(1)
		hierarchy, skipped, err := extract.Extract(ws, cfg.Process.StartVersion, cfg.Process.EndVersion)
		extractBar.Increment()
		extractBar.Finish()
		if err != nil {
			return fmt.Errorf("JSON creation failed: %w", err)
		}
		rep.Hierarchy = hierarchy
		rep.SkippedRows = skipped
		if len(skipped) > 0 {
			logger.Info(">> Skipped rows for JSON creation: %v", skipped)
		}
	} else {
		pipeline.NextPhase(0).Finish()
	}

	// --- Phase 3: Reporting ---
	logger.Info("Phase 3: Generating reports...")
	wanted := cfg.Output.Formats
	if exportJSON && !contains(wanted, "json") {
		wanted = append(append([]string{}, wanted...), "json")
	}
	exporters := exporter.GetExporters(wanted)
	genBar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		if err := exp.Export(rep, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		genBar.Increment()
	}
	genBar.Finish()
	pipeline.Finish()

	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
	}

	return nil
}

// printIssues renders the ledger the way the processing summary always has:
// every category in fixed order, even when empty.
func printIssues(ledger *model.Ledger) {
	fmt.Println(">> Issues found during processing:")
	for _, entry := range ledger.Entries() {
		fmt.Printf("--%s : \n%v\n\n", strings.ToUpper(entry.Category), entry.Values)
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), want) {
			return true
		}
	}
	return false
}
