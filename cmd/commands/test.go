package commands

import (
	"fmt"
	"os"

	"github.com/shieldcli/crscore/internal/orchestrate"
	"github.com/shieldcli/crscore/pkg/config"
	"github.com/shieldcli/crscore/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	ruleDir         string
	testDir         string
	strictRoundTrip bool
	jsonLogPath     string
	csvLogPath      string
	logLevel        string
	logFormat       string
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run FTW test suites against a set of CRS rule files",
	Long: `Loads every .conf directive file in --rules, compiles the rules it
finds (following SecRule chains), then loads every FTW .yaml test file in
--tests and runs each stage's request through the engine, reporting a
pass or fail per stage.

Example:
  crscore test --rules ./rules --tests ./tests`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTests()
	},
}

func init() {
	testCmd.Flags().StringVar(&ruleDir, "rules", "./rules", "Directory of .conf rule files")
	testCmd.Flags().StringVar(&testDir, "tests", "./tests", "Directory of FTW .yaml test files")
	testCmd.Flags().BoolVar(&strictRoundTrip, "strict-round-trip", false, "Fail a rule file load if format(parse(x)) does not reparse to the same AST")
	testCmd.Flags().StringVar(&jsonLogPath, "json-log", "", "Path to append newline-delimited JSON events to")
	testCmd.Flags().StringVar(&csvLogPath, "csv-log", "", "Path to append CSV events to")
	testCmd.Flags().StringVar(&logLevel, "log-level", "info", "Terminal verbosity: debug, info, warn, or error")
	testCmd.Flags().StringVar(&logFormat, "log-format", "text", "Terminal summary format: text (human-readable banners) or json (structured events only)")
}

func runTests() error {
	cfg := config.NewConfig()
	cfg.RuleDir = ruleDir
	cfg.TestDir = testDir
	cfg.StrictRoundTrip = strictRoundTrip
	cfg.LogFile = jsonLogPath
	cfg.LogLevel = logLevel
	cfg.LogFormat = logFormat

	if viper.IsSet("rules.dir") {
		cfg.RuleDir = viper.GetString("rules.dir")
	}
	if viper.IsSet("rules.strict_round_trip") {
		cfg.StrictRoundTrip = viper.GetBool("rules.strict_round_trip")
	}
	if viper.IsSet("tests.dir") {
		cfg.TestDir = viper.GetString("tests.dir")
	}
	if viper.IsSet("logging.file_path") {
		cfg.LogFile = viper.GetString("logging.file_path")
	}

	log, err := logging.NewStructuredLogger(cfg.LogFile, csvLogPath, 10000)
	if err != nil {
		return fmt.Errorf("opening structured logger: %w", err)
	}
	defer log.Close()

	term := logging.NewLogger("")
	defer term.Close()
	banners := cfg.LogFormat != "json"
	debug := cfg.LogLevel == "debug"

	orch := orchestrate.NewOrchestrator(cfg.RuleDir, cfg.TestDir, cfg.StrictRoundTrip)

	files, loadErrs := orch.LoadRules(log)
	for _, e := range loadErrs {
		term.Error("rule load error: %v", e)
	}
	if banners {
		term.Info("Loaded %d rule file(s) from %s", len(files), cfg.RuleDir)
	}
	if debug {
		for _, f := range files {
			term.Debug("rule file %s: %d directive(s)", f.Path, len(f.Entries))
		}
	}

	results, testErrs := orch.RunTests(log, term)
	for _, e := range testErrs {
		term.Error("test load error: %v", e)
	}

	passed, failed := 0, 0
	for _, r := range results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}

	if banners {
		term.Info("%d passed, %d failed (%d total stages)", passed, failed, len(results))
	}

	if failed > 0 || len(loadErrs) > 0 || len(testErrs) > 0 {
		os.Exit(1)
	}
	return nil
}
