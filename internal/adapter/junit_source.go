package adapter

import (
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
	jsoniter "github.com/json-iterator/go"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// failureTags are the testcase children that mark a failed test, in lookup order.
var failureTags = []string{"failure", "error"}

// decodeJUnitReport reads the failed testcases of a JUnit XML report.
// Both <testsuite> and <testsuites> roots are accepted.
func decodeJUnitReport(path string) ([]m.FailedTest, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}

	var failures []m.FailedTest

	for _, testcase := range doc.FindElements("//testcase") {
		detail := failureDetail(testcase)
		if detail == nil {
			continue
		}

		classname := testcase.SelectAttrValue("classname", "")
		name := testcase.SelectAttrValue("name", "")

		record := m.FailedTest{
			LocationRef: junitLocation(classname, name, testcase.SelectAttrValue("file", "")),
			Name:        junitName(classname, name),
			Stacktrace:  strings.TrimSpace(detail.Text()),
		}

		if attr := detail.SelectAttr("message"); attr != nil {
			message := attr.Value
			record.ErrorMessage = &message
		}

		failures = append(failures, record)
	}

	return failures, nil
}

func failureDetail(testcase *etree.Element) *etree.Element {
	for _, tag := range failureTags {
		if el := testcase.SelectElement(tag); el != nil {
			return el
		}
	}

	return nil
}

func junitLocation(classname, name, file string) string {
	switch {
	case classname != "" && name != "":
		return JavaTestScheme + classname + "/" + name
	case classname != "":
		return JavaSuiteScheme + classname
	case file != "":
		return FileScheme + file
	default:
		return ""
	}
}

func junitName(classname, name string) string {
	if classname == "" {
		return name
	}

	short := classname[strings.LastIndex(classname, ".")+1:]
	if name == "" {
		return short
	}

	return short + "." + name
}

// decodeJSONReport reads a JSON array of failed test records.
func decodeJSONReport(path string) ([]m.FailedTest, error) {
	// #nosec G304 - report paths come from the configured results view
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var failures []m.FailedTest
	if err := jsonAPI.Unmarshal(data, &failures); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	return failures, nil
}
