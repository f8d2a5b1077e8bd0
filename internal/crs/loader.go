package crs

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
)

// LoadDir parses every .conf file in dir (skipping EXCLUSION-RULES packs,
// which CRS treats as opt-in), in lexicographic filename order — the
// order CRS itself relies on, since rule IDs and chain/skipAfter targets
// are resolved by load order, not by an explicit dependency graph.
//
// When strictRoundTrip is true, every parsed file is immediately
// reformatted and reparsed; any divergence from the first parse is
// reported as a *RoundTripError rather than silently accepted, catching
// parser/formatter bugs before the file's rules ever reach the
// extraction-and-match pipeline.
func LoadDir(dir string, strictRoundTrip bool) ([]*CRSFile, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("reading rule directory %s: %w", dir, err)}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var files []*CRSFile
	var errs []error
	for _, name := range RuleDirFiles(names) {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %s: %w", path, err))
			continue
		}

		f, parseErrs := Parse(path, string(data))
		for _, pe := range parseErrs {
			errs = append(errs, pe)
		}

		if strictRoundTrip {
			if err := VerifyRoundTrip(f); err != nil {
				errs = append(errs, err)
				continue
			}
		}

		files = append(files, f)
	}

	return files, errs
}

// VerifyRoundTrip reformats f and reparses the result, failing if the
// reparsed AST differs from f. This is the engine's guarantee that
// Format never silently drops or reshapes a directive it claims to
// understand.
func VerifyRoundTrip(f *CRSFile) error {
	rendered := Format(f)
	reparsed, errs := Parse(f.Path, rendered)
	if len(errs) > 0 {
		return &RoundTripError{File: f.Path, Diff: fmt.Sprintf("reparse failed: %v", errs[0])}
	}
	if !reflect.DeepEqual(f.Entries, reparsed.Entries) {
		return &RoundTripError{File: f.Path, Diff: "reformatted file reparses to a different AST"}
	}
	return nil
}
