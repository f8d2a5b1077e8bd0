package operators

import (
	"bufio"
	"os"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// patternMatch matches when any whitespace-separated phrase in arg
// occurs in value, case-insensitively — @pm's documented behavior.
func patternMatch(value []byte, arg string) (Result, error) {
	phrases := strings.Fields(arg)
	return matchPhrases(value, phrases)
}

// patternMatchFromFile is @pm with its phrase list loaded from one or
// more files instead of inlined in the rule. arg is a whitespace
// separated list of file paths, each containing one phrase per line;
// blank lines and "#" comments are ignored, matching @pmFromFile's
// documented file format.
func patternMatchFromFile(value []byte, arg string) (Result, error) {
	var phrases []string
	for _, path := range strings.Fields(arg) {
		loaded, err := loadPhraseFile(path)
		if err != nil {
			return Result{}, err
		}
		phrases = append(phrases, loaded...)
	}
	return matchPhrases(value, phrases)
}

func matchPhrases(value []byte, phrases []string) (Result, error) {
	if len(phrases) == 0 {
		return Result{}, nil
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostFirstMatch,
		DFA:                  true,
	})
	automaton := builder.Build(phrases)

	matches := automaton.FindAll(string(value))
	if len(matches) == 0 {
		return Result{}, nil
	}

	captures := make([]string, 0, len(matches))
	for _, m := range matches {
		captures = append(captures, phrases[m.Pattern()])
	}
	return Result{Matched: true, Captures: captures}, nil
}

func loadPhraseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var phrases []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	return phrases, scanner.Err()
}
