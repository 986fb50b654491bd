package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

// Default patterns. Each must hold exactly one capture group.
const (
	DefaultLinePattern     = `Test\.java:(\d+)`
	DefaultExpectedPattern = `expected: ([^\n]+)`
	DefaultActualPattern   = `but was: ([^\n]+)`
)

// Patterns configures the regular expressions used to read failures.
type Patterns struct {
	// Line matches a stack frame of the test file and captures its 1-based line number.
	Line string
	// Expected captures the expected value of an assertion message.
	Expected string
	// Actual captures the actual value of an assertion message.
	Actual string
}

// DefaultPatterns returns the patterns for JUnit assertion messages in *Test.java files.
func DefaultPatterns() Patterns {
	return Patterns{
		Line:     DefaultLinePattern,
		Expected: DefaultExpectedPattern,
		Actual:   DefaultActualPattern,
	}
}

// Extractor turns stack traces and assertion messages into patch plan fields.
type Extractor struct {
	line     *regexp.Regexp
	expected *regexp.Regexp
	actual   *regexp.Regexp
}

// NewExtractor compiles patterns. Empty patterns fall back to the defaults.
func NewExtractor(patterns Patterns) (*Extractor, error) {
	defaults := DefaultPatterns()

	line, err := compileCapture("line", patterns.Line, defaults.Line)
	if err != nil {
		return nil, err
	}

	expected, err := compileCapture("expected", patterns.Expected, defaults.Expected)
	if err != nil {
		return nil, err
	}

	actual, err := compileCapture("actual", patterns.Actual, defaults.Actual)
	if err != nil {
		return nil, err
	}

	return &Extractor{line: line, expected: expected, actual: actual}, nil
}

var defaultExtractor = &Extractor{
	line:     regexp.MustCompile(DefaultLinePattern),
	expected: regexp.MustCompile(DefaultExpectedPattern),
	actual:   regexp.MustCompile(DefaultActualPattern),
}

// DefaultExtractor returns the extractor for the default patterns.
func DefaultExtractor() *Extractor {
	return defaultExtractor
}

func compileCapture(name, pattern, fallback string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = fallback
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %s pattern: %w", name, err)
	}

	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("%s pattern %q has no capture group", name, pattern)
	}

	return re, nil
}

// ExtractFailingLine returns the zero-based line of the first matching frame in stacktrace.
func (e *Extractor) ExtractFailingLine(stacktrace string) (int, bool) {
	for _, frame := range strings.Split(stacktrace, "\n") {
		match := e.line.FindStringSubmatch(frame)
		if match == nil {
			continue
		}

		n, err := strconv.Atoi(match[1])
		if err != nil || n < 1 {
			return -1, false
		}

		return n - 1, true
	}

	return -1, false
}

// ExtractExpectedActual returns the expected and actual values of an assertion message.
// The two searches are independent, so their order in the message does not matter.
func (e *Extractor) ExtractExpectedActual(message string) (string, string, bool) {
	expected, ok := capture(e.expected, e.actual, message)
	if !ok {
		return "", "", false
	}

	actual, ok := capture(e.actual, e.expected, message)
	if !ok {
		return "", "", false
	}

	return expected, actual, true
}

// capture returns the first group of re in message, cut where other starts on the same line.
func capture(re, other *regexp.Regexp, message string) (string, bool) {
	match := re.FindStringSubmatch(message)
	if match == nil {
		return "", false
	}

	value := match[1]
	if loc := other.FindStringIndex(value); loc != nil {
		value = value[:loc[0]]
	}

	value = normalizeValue(value)

	return value, value != ""
}

// normalizeValue trims trailing blanks and unwraps the <...> form of JUnit messages.
func normalizeValue(value string) string {
	value = strings.TrimRight(value, " \t\r")

	if len(value) >= 2 && strings.HasPrefix(value, "<") && strings.HasSuffix(value, ">") {
		value = value[1 : len(value)-1]
	}

	return value
}

// ExtractFailingLine uses the default patterns.
func ExtractFailingLine(stacktrace string) (int, bool) {
	return defaultExtractor.ExtractFailingLine(stacktrace)
}

// ExtractExpectedActual uses the default patterns.
func ExtractExpectedActual(message string) (string, string, bool) {
	return defaultExtractor.ExtractExpectedActual(message)
}

// LocateReplacementSpan finds the first occurrence of expected at or after lineStart.
func LocateReplacementSpan(text string, lineStart int, expected string) (m.Span, bool) {
	if expected == "" || lineStart < 0 || lineStart > len(text) {
		return m.Span{}, false
	}

	i := strings.Index(text[lineStart:], expected)
	if i < 0 {
		return m.Span{}, false
	}

	return m.Span{Start: lineStart + i, Length: len(expected)}, true
}
