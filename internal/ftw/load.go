package ftw

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML applies FTW's documented field defaults before decoding,
// since yaml.v3 has no notion of a per-field default value the way serde
// does with #[serde(default = "...")].
func (in *Input) UnmarshalYAML(value *yaml.Node) error {
	type inputAlias Input
	alias := inputAlias(defaultInput())
	if err := value.Decode(&alias); err != nil {
		return err
	}
	*in = Input(alias)
	return nil
}

// UnmarshalYAML defaults Enabled to true, matching FTW's
// `#[serde(default = "defaults::enabled")]`.
func (m *Meta) UnmarshalYAML(value *yaml.Node) error {
	type metaAlias Meta
	alias := metaAlias{Enabled: true}
	if err := value.Decode(&alias); err != nil {
		return err
	}
	*m = Meta(alias)
	return nil
}

// ParseFile parses the contents of one FTW YAML test file and applies
// DoMagic to every stage's input, matching File::from_str's behavior in
// the original framework.
func ParseFile(path string, data []byte) (*File, error) {
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)

	var raw struct {
		Meta  Meta   `yaml:"meta"`
		Tests []Test `yaml:"tests"`
	}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	f := &File{Path: path, Meta: raw.Meta, Tests: raw.Tests}
	for _, stage := range f.Stages() {
		stage.Input.DoMagic()
	}
	return f, nil
}

// LoadDir parses every .yml/.yaml file directly inside dir. Unlike rule
// loading, test files have no load-order dependency, but results are
// still returned in lexicographic filename order for reproducible
// reporting.
func LoadDir(dir string) ([]*File, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("reading test directory %s: %w", dir, err)}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yml" || ext == ".yaml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var files []*File
	var errs []error
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %s: %w", path, err))
			continue
		}
		f, err := ParseFile(path, data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !f.Meta.Enabled {
			continue
		}
		files = append(files, f)
	}

	return files, errs
}
