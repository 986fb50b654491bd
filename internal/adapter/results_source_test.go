package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

const calculatorReport = `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="com.acme.CalculatorTest" tests="3" failures="1" errors="1">
  <testcase name="testSum" classname="com.acme.CalculatorTest" time="0.01">
    <failure message="expected: &lt;5&gt; but was: &lt;7&gt;" type="org.opentest4j.AssertionFailedError">org.opentest4j.AssertionFailedError: expected: &lt;5&gt; but was: &lt;7&gt;
	at com.acme.CalculatorTest.testSum(CalculatorTest.java:12)
</failure>
  </testcase>
  <testcase name="testPasses" classname="com.acme.CalculatorTest" time="0.01"/>
  <testcase name="testBoom" classname="com.acme.CalculatorTest" time="0.01">
    <error type="java.lang.IllegalStateException">java.lang.IllegalStateException
	at com.acme.Calculator.boom(Calculator.java:40)
</error>
  </testcase>
</testsuite>
`

const parserReport = `<?xml version="1.0" encoding="UTF-8"?>
<testsuites>
  <testsuite name="com.acme.ParserTest">
    <testcase name="parsesName" classname="com.acme.ParserTest">
      <failure message="expected: foo but was: bar">at com.acme.ParserTest.parsesName(ParserTest.java:7)</failure>
    </testcase>
  </testsuite>
</testsuites>
`

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocalTestResultSource_Failures_JUnit(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "surefire-reports", "TEST-com.acme.ParserTest.xml"), parserReport)
	writeTestFile(t, filepath.Join(dir, "surefire-reports", "TEST-com.acme.CalculatorTest.xml"), calculatorReport)
	writeTestFile(t, filepath.Join(dir, "surefire-reports", "notes.txt"), "ignored")

	source := NewLocalTestResultSource(4)

	failures, err := source.Failures(context.Background(), m.ResultsView{Dir: m.Path(dir), Format: m.FormatJUnit})
	require.NoError(t, err)
	require.Len(t, failures, 3)

	// Reports are read in path order, testcases in file order.
	assert.Equal(t, "java:test://com.acme.CalculatorTest/testSum", failures[0].LocationRef)
	assert.Equal(t, "CalculatorTest.testSum", failures[0].Name)
	require.NotNil(t, failures[0].ErrorMessage)
	assert.Equal(t, "expected: <5> but was: <7>", *failures[0].ErrorMessage)
	assert.Contains(t, failures[0].Stacktrace, "CalculatorTest.java:12")

	assert.Equal(t, "java:test://com.acme.CalculatorTest/testBoom", failures[1].LocationRef)
	assert.Nil(t, failures[1].ErrorMessage)
	assert.Contains(t, failures[1].Stacktrace, "IllegalStateException")

	assert.Equal(t, "java:test://com.acme.ParserTest/parsesName", failures[2].LocationRef)
	assert.Equal(t, "expected: foo but was: bar", failures[2].Message())
}

func TestLocalTestResultSource_Failures_JSON(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "run.failures.json"), `[
  {"location": "file://src/test/java/FooTest.java", "name": "FooTest.sum", "message": "expected: 5 but was: 7", "stacktrace": "at FooTest.java:12"},
  {"location": "java:suite://com.acme.BarTest", "stacktrace": "boom"}
]`)

	source := NewLocalTestResultSource(1)

	failures, err := source.Failures(context.Background(), m.ResultsView{Dir: m.Path(dir), Format: m.FormatJSON})
	require.NoError(t, err)
	require.Len(t, failures, 2)

	assert.Equal(t, "file://src/test/java/FooTest.java", failures[0].LocationRef)
	assert.Equal(t, "expected: 5 but was: 7", failures[0].Message())
	assert.False(t, failures[1].HasErrorMessage())
}

func TestLocalTestResultSource_Failures_Errors(t *testing.T) {
	t.Run("no reports", func(t *testing.T) {
		source := NewLocalTestResultSource(1)

		_, err := source.Failures(context.Background(), m.ResultsView{Dir: m.Path(t.TempDir()), Format: m.FormatJUnit})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNoResults))
	})

	t.Run("unsupported format", func(t *testing.T) {
		source := NewLocalTestResultSource(1)

		_, err := source.Failures(context.Background(), m.ResultsView{Dir: m.Path(t.TempDir()), Format: "tap"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported results format")
	})

	t.Run("broken report", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "TEST-broken.xml"), "<testsuite><<oops")

		source := NewLocalTestResultSource(2)

		_, err := source.Failures(context.Background(), m.ResultsView{Dir: m.Path(dir), Format: m.FormatJUnit})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST-broken.xml")
	})

	t.Run("invalid pattern", func(t *testing.T) {
		source := NewLocalTestResultSource(1)

		_, err := source.Failures(context.Background(), m.ResultsView{Dir: m.Path(t.TempDir()), Pattern: "[", Format: m.FormatJUnit})
		require.Error(t, err)
	})
}

func TestLocalTestResultSource_CustomPattern(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "build", "test-results", "test", "TEST-com.acme.ParserTest.xml"), parserReport)
	writeTestFile(t, filepath.Join(dir, "other", "TEST-com.acme.CalculatorTest.xml"), calculatorReport)

	source := NewLocalTestResultSource(1)

	failures, err := source.Failures(context.Background(), m.ResultsView{
		Dir:     m.Path(dir),
		Pattern: "build/**/TEST-*.xml",
		Format:  m.FormatJUnit,
	})
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "ParserTest.parsesName", failures[0].Name)
}

func TestLocalTestResultSource_Available(t *testing.T) {
	source := NewLocalTestResultSource(1)
	ctx := context.Background()

	dir := t.TempDir()
	available, err := source.Available(ctx, m.ResultsView{Dir: m.Path(dir), Format: m.FormatJUnit})
	require.NoError(t, err)
	assert.False(t, available)

	writeTestFile(t, filepath.Join(dir, "TEST-com.acme.ParserTest.xml"), parserReport)

	available, err = source.Available(ctx, m.ResultsView{Dir: m.Path(dir), Format: m.FormatJUnit})
	require.NoError(t, err)
	assert.True(t, available)

	available, err = source.Available(ctx, m.ResultsView{Dir: m.Path(filepath.Join(dir, "missing")), Format: m.FormatJUnit})
	require.NoError(t, err)
	assert.False(t, available)
}

func TestJUnitLocation(t *testing.T) {
	tests := []struct {
		name      string
		classname string
		test      string
		file      string
		want      string
	}{
		{name: "test method", classname: "com.acme.FooTest", test: "sum", want: "java:test://com.acme.FooTest/sum"},
		{name: "suite only", classname: "com.acme.FooTest", want: "java:suite://com.acme.FooTest"},
		{name: "file attribute", file: "src/test/FooTest.java", want: "file://src/test/FooTest.java"},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, junitLocation(tt.classname, tt.test, tt.file))
		})
	}
}
