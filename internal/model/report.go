package model

import "time"

// Outcome is the result of one patch attempt.
type Outcome string

const (
	// Patched indicates the expected value was replaced with the actual value.
	Patched Outcome = "patched"
	// SkippedNoError indicates the test carried no error message.
	SkippedNoError Outcome = "skipped-no-error"
	// SkippedUnparseable indicates the stack trace or the assertion could not be parsed.
	SkippedUnparseable Outcome = "skipped-unparseable"
	// SkippedUnresolved indicates the location did not map to an editable document.
	SkippedUnresolved Outcome = "skipped-unresolved"
	// SkippedNotFound indicates the expected text is absent from the failing line onward.
	SkippedNotFound Outcome = "skipped-not-found"
	// SaveFailed indicates the buffer was patched but could not be written back to disk.
	SaveFailed Outcome = "save-failed"
)

// Skipped reports whether the outcome left the file on disk untouched.
func (o Outcome) Skipped() bool {
	return o != Patched
}

func (o Outcome) String() string {
	return string(o)
}

// SkipReason refines SkippedUnparseable and SkippedUnresolved.
type SkipReason string

const (
	ReasonNone        SkipReason = ""
	ReasonNoLine      SkipReason = "no line reference in stack trace"
	ReasonNoAssertion SkipReason = "no expected/actual pair in message"
	ReasonNoDocument  SkipReason = "location does not resolve to a file"
	ReasonLineRange   SkipReason = "line is outside the document"
	ReasonEditFailed  SkipReason = "document rejected the edit"
)

// RecordResult is the structured outcome for one FailedTest.
type RecordResult struct {
	Test     FailedTest `json:"test" yaml:"test"`
	Plan     PatchPlan  `json:"plan" yaml:"plan"`
	Outcome  Outcome    `json:"outcome" yaml:"outcome"`
	Reason   SkipReason `json:"reason,omitempty" yaml:"reason,omitempty"`
	File     Path       `json:"file,omitempty" yaml:"file,omitempty"`
	LineText string     `json:"line_text,omitempty" yaml:"line_text,omitempty"`
	Diff     string     `json:"diff,omitempty" yaml:"diff,omitempty"`
	// SaveError is set when the patched buffer could not be written back.
	SaveError string `json:"save_error,omitempty" yaml:"save_error,omitempty"`
	// Rerun is true when a re-run was requested right after this record.
	Rerun      bool   `json:"rerun,omitempty" yaml:"rerun,omitempty"`
	RerunError string `json:"rerun_error,omitempty" yaml:"rerun_error,omitempty"`
}

// RunConfiguration is a named, reusable description of how to execute the tests.
type RunConfiguration struct {
	Name    string            `json:"name" yaml:"name" mapstructure:"name"`
	Command []string          `json:"command" yaml:"command" mapstructure:"command"`
	Dir     string            `json:"dir,omitempty" yaml:"dir,omitempty" mapstructure:"dir"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty" mapstructure:"env"`
	EnvFile string            `json:"env_file,omitempty" yaml:"env_file,omitempty" mapstructure:"env_file"`
}

// Valid reports whether the configuration can be executed.
func (c RunConfiguration) Valid() bool {
	return len(c.Command) > 0 && c.Command[0] != ""
}

// RunReport records one invocation of the fix action.
type RunReport struct {
	ID            string           `json:"id" yaml:"id"`
	StartedAt     time.Time        `json:"started_at" yaml:"started_at"`
	Duration      time.Duration    `json:"duration" yaml:"duration"`
	View          ResultsView      `json:"view" yaml:"view"`
	Configuration RunConfiguration `json:"configuration" yaml:"configuration"`
	DryRun        bool             `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Results       []RecordResult   `json:"results" yaml:"results"`
	Reruns        int              `json:"reruns" yaml:"reruns"`
}

// Count returns how many results ended with the given outcome.
func (r RunReport) Count(outcome Outcome) int {
	n := 0

	for _, result := range r.Results {
		if result.Outcome == outcome {
			n++
		}
	}

	return n
}
