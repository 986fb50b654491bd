// Package model defines the data structures shared by the patcher, adapters and UI.
package model

// Path represents a file system path.
type Path string

// ResultsFormat identifies how a results view is stored on disk.
type ResultsFormat string

const (
	// FormatJUnit reads JUnit/Surefire XML reports (TEST-*.xml).
	FormatJUnit ResultsFormat = "junit"
	// FormatJSON reads a JSON array of failed test records.
	FormatJSON ResultsFormat = "json"
)

// ResultsView is the test-run result view the action operates on.
// It replaces the host-wide "selected content" with an explicit argument.
type ResultsView struct {
	Dir     Path          `json:"dir" yaml:"dir"`
	Pattern string        `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Format  ResultsFormat `json:"format" yaml:"format"`
}

// FailedTest is one test outcome as reported by the test runner.
type FailedTest struct {
	// LocationRef resolves to the owning source file, e.g. java:test://com.acme.FooTest/testSum.
	LocationRef string `json:"location" yaml:"location"`
	// Name is the human-readable test name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// ErrorMessage is nil when the test did not fail with a message.
	ErrorMessage *string `json:"message,omitempty" yaml:"message,omitempty"`
	Stacktrace   string  `json:"stacktrace,omitempty" yaml:"stacktrace,omitempty"`
}

// HasErrorMessage reports whether the record carries an assertion message.
func (f FailedTest) HasErrorMessage() bool {
	return f.ErrorMessage != nil
}

// Message returns the error message or an empty string.
func (f FailedTest) Message() string {
	if f.ErrorMessage == nil {
		return ""
	}

	return *f.ErrorMessage
}
