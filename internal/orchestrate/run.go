package orchestrate

import (
	"fmt"
	"time"

	"github.com/shieldcli/crscore/internal/crs"
	"github.com/shieldcli/crscore/internal/ftw"
	"github.com/shieldcli/crscore/internal/operators"
	"github.com/shieldcli/crscore/pkg/logging"
)

// Orchestrator owns the loaded rule set and test suite, and drives
// evaluation of one against the other while reporting what happened
// through a StructuredLogger.
type Orchestrator struct {
	RuleDir         string
	TestDir         string
	StrictRoundTrip bool

	Registry operators.Registry

	rules []CompiledRule
}

// NewOrchestrator returns an Orchestrator wired to the default operator
// registry.
func NewOrchestrator(ruleDir, testDir string, strictRoundTrip bool) *Orchestrator {
	return &Orchestrator{
		RuleDir:         ruleDir,
		TestDir:         testDir,
		StrictRoundTrip: strictRoundTrip,
		Registry:        operators.Default(),
	}
}

// LoadRules parses every .conf file in RuleDir and compiles it into
// evaluation-ready rules, reporting one "rule_loaded" event per file and
// surfacing any parse or round-trip error to log.
func (o *Orchestrator) LoadRules(log *logging.StructuredLogger) ([]*crs.CRSFile, []error) {
	files, errs := crs.LoadDir(o.RuleDir, o.StrictRoundTrip)

	for _, f := range files {
		if log != nil {
			log.LogEvent(logging.StructuredEvent{
				EventType:   "rule_loaded",
				File:        f.Path,
				RulesLoaded: len(f.Entries),
			})
		}
	}
	for _, err := range errs {
		if log != nil {
			log.LogEvent(logging.StructuredEvent{
				EventType: "round_trip_failed",
				Reason:    err.Error(),
			})
		}
	}

	o.rules = CompileRules(files)
	return files, errs
}

// StageResult is the outcome of running one FTW stage's input through
// the engine and checking it against the stage's expected output.
type StageResult struct {
	TestTitle string
	Passed    bool
	Reason    string
	Eval      Evaluation
}

// RunTests loads TestDir's FTW files and runs every stage through the
// compiled rule set, logging a "stage_pass"/"stage_fail" event per stage
// to log and, when term is non-nil, a human-readable block notice for
// every stage the engine decided to block. LoadRules must be called
// first.
func (o *Orchestrator) RunTests(log *logging.StructuredLogger, term *logging.Logger) ([]StageResult, []error) {
	files, errs := ftw.LoadDir(o.TestDir)

	var results []StageResult
	for _, f := range files {
		for _, test := range f.Tests {
			for _, sw := range test.Stages {
				stage := sw.Stage
				started := time.Now()
				result := o.runStage(test.TestTitle, &stage, term)
				elapsed := time.Since(started)
				results = append(results, result)

				if log != nil {
					eventType := "stage_pass"
					if !result.Passed {
						eventType = "stage_fail"
					}
					log.LogEvent(logging.StructuredEvent{
						EventType:  eventType,
						File:       f.Path,
						TestTitle:  result.TestTitle,
						Reason:     result.Reason,
						DurationMS: elapsed.Milliseconds(),
					})
				}
			}
		}
	}

	return results, errs
}

func (o *Orchestrator) runStage(testTitle string, stage *ftw.Stage, term *logging.Logger) StageResult {
	req, err := buildRequest(&stage.Input)
	if err != nil {
		return StageResult{TestTitle: testTitle, Passed: false, Reason: fmt.Sprintf("building request: %v", err)}
	}

	eval := Evaluate(o.rules, o.Registry, req)
	if eval.Blocked && term != nil {
		term.Block("%s: %d rule(s) matched, request blocked", testTitle, len(eval.Matched))
	}

	if stage.Output == nil {
		return StageResult{TestTitle: testTitle, Passed: true, Eval: eval}
	}

	expectedBlocked := stage.Output.Status != nil && !stage.Output.Status.Matches(200)
	if expectedBlocked != eval.Blocked {
		return StageResult{
			TestTitle: testTitle,
			Passed:    false,
			Reason:    fmt.Sprintf("expected blocked=%v, engine decided blocked=%v", expectedBlocked, eval.Blocked),
			Eval:      eval,
		}
	}

	return StageResult{TestTitle: testTitle, Passed: true, Eval: eval}
}
