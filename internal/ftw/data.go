package ftw

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawData is a stage's request body, as authored in YAML: absent, a
// single string, or a list of lines joined with CRLF. FTW authors write
// multi-line bodies as a YAML list so each line's trailing whitespace
// survives; RawData.Text collapses that back into the single string the
// request body actually needs.
type RawData struct {
	Text *string
}

// UnmarshalYAML accepts a scalar string, a sequence of strings, or an
// absent/null node, matching FTW's untagged InputData enum.
func (d *RawData) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		d.Text = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			d.Text = nil
			return nil
		}
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		d.Text = &s
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := value.Decode(&lines); err != nil {
			return err
		}
		joined := strings.Join(lines, "\r\n")
		d.Text = &joined
		return nil
	default:
		return fmt.Errorf("data: unexpected YAML node kind %d", value.Kind)
	}
}

var escapedCRLF = regexp.MustCompile(`\\r\\n`)

// replaceEscapedCRLF turns a literal "\r\n" two-character escape sequence
// written in a YAML string into an actual CRLF, the way FTW's magic step
// does for request bodies authored with escaped line breaks.
func (d *RawData) replaceEscapedCRLF() {
	if d.Text == nil {
		return
	}
	replaced := escapedCRLF.ReplaceAllString(*d.Text, "\r\n")
	d.Text = &replaced
}

// UnmarshalYAML accepts either a single status code or a list of
// acceptable ones, matching FTW's untagged OutputStatus enum.
func (s *OutputStatus) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var n int
		if err := value.Decode(&n); err != nil {
			return err
		}
		s.Single = &n
		return nil
	case yaml.SequenceNode:
		var list []int
		if err := value.Decode(&list); err != nil {
			return err
		}
		s.AnyOf = list
		return nil
	default:
		return fmt.Errorf("status: unexpected YAML node kind %d", value.Kind)
	}
}

// Matches reports whether a response status code satisfies this OutputStatus.
func (s *OutputStatus) Matches(status int) bool {
	if s == nil {
		return true
	}
	if s.Single != nil {
		return *s.Single == status
	}
	for _, candidate := range s.AnyOf {
		if candidate == status {
			return true
		}
	}
	return false
}
