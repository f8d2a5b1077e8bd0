// Package ftw reads the Firewall Testing Framework YAML test dialect:
// one or more multi-stage HTTP test cases per file, each stage holding
// the request to send and the response characteristics expected back.
package ftw

// Meta describes a test file's authorship and whether it should run.
type Meta struct {
	Name        string `yaml:"name,omitempty"`
	Author      string `yaml:"author,omitempty"`
	Description string `yaml:"description,omitempty"`
	Enabled     bool   `yaml:"enabled"`
}

// Input is one stage's request. Headers is a map because FTW treats
// duplicate header names as a file-authoring mistake, not a feature to
// preserve the way live traffic does.
type Input struct {
	DestAddr  string            `yaml:"dest_addr"`
	Port      int               `yaml:"port"`
	Method    string            `yaml:"method"`
	Headers   map[string]string `yaml:"headers,omitempty"`
	Protocol  string            `yaml:"protocol"`
	URI       string            `yaml:"uri"`
	Version   string            `yaml:"version,omitempty"`
	Data      RawData           `yaml:"data"`
	SaveCookie bool             `yaml:"save_cookie,omitempty"`
	StopMagic bool              `yaml:"stop_magic,omitempty"`

	// EncodedRequest, when set, is a base64-encoded raw request that
	// overrides every other field. RawRequest does the same, unencoded.
	EncodedRequest *string `yaml:"encoded_request,omitempty"`
	RawRequest     *string `yaml:"raw_request,omitempty"`
}

// defaultInput returns an Input populated with FTW's documented
// defaults, applied before YAML unmarshaling overwrites what the file
// actually specifies.
func defaultInput() Input {
	return Input{
		DestAddr: "localhost",
		Port:     80,
		Method:   "GET",
		Protocol: "http",
		URI:      "/",
		Version:  "HTTP/1.1",
	}
}

// OutputStatus is either a single expected status code or a list of
// acceptable ones.
type OutputStatus struct {
	Single  *int
	AnyOf   []int
}

// Output is what a stage's response is checked against. A nil field
// means that dimension is not checked.
type Output struct {
	Status          *OutputStatus `yaml:"status,omitempty"`
	ResponseContains *string      `yaml:"response_contains,omitempty"`
	LogContains      *string      `yaml:"log_contains,omitempty"`
	NoLogContains    *string      `yaml:"no_log_contains,omitempty"`
	ExpectError      bool         `yaml:"expect_error,omitempty"`
}

// Stage is one request/response exchange within a Test.
type Stage struct {
	Input  Input   `yaml:"input"`
	Output *Output `yaml:"output,omitempty"`
}

type stageWrapper struct {
	Stage Stage `yaml:"stage"`
}

// Test is one named, possibly multi-stage test case.
type Test struct {
	TestTitle string         `yaml:"test_title"`
	Desc      string         `yaml:"desc,omitempty"`
	Stages    []stageWrapper `yaml:"stages"`
}

// File is a fully parsed FTW YAML test file.
type File struct {
	Path  string
	Meta  Meta
	Tests []Test
}

// Stages returns every stage across every test in file order.
func (f *File) Stages() []*Stage {
	var out []*Stage
	for ti := range f.Tests {
		for si := range f.Tests[ti].Stages {
			out = append(out, &f.Tests[ti].Stages[si].Stage)
		}
	}
	return out
}
