package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single comparison printed by PrintTestTable.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// PrintTestTable prints a formatted table of comparison results.
// It fails the test if any case has Pass=false.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)

	const (
		Reset = "\033[0m"
		Red   = "\033[31m"
		Green = "\033[32m"
	)

	fmt.Fprintf(w, "Input\tExpected Value\tReturned Value\t\n")

	anyFailed := false
	for _, tc := range cases {
		color := Green
		leftPtr, rightPtr := " ", " "
		if !tc.Pass {
			anyFailed = true
			color = Red
			leftPtr = Red + ">" + Reset
			rightPtr = Red + "<" + Reset
		}
		fmt.Fprintf(w, "%s %q\t%q\t%s%q%s\t%s\n",
			leftPtr, tc.Input, tc.Expected, color, tc.Actual, Reset, rightPtr)
	}

	w.Flush()
	fmt.Println()

	if anyFailed {
		t.Fail()
	}
}

// WriteFile creates dir/name with content and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// ReadFile returns the content of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
