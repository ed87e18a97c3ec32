package presenter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dtnitsch/wordharvest/models"
	"gopkg.in/yaml.v3"
)

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTable(&buf, WordsHeader, []string{"dog", "Cat", "x_train"}); err != nil {
		t.Fatalf("RenderTable() error = %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 5 {
		t.Fatalf("table has %d lines, want a bordered table:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Top Words") {
		t.Errorf("header line = %q, want it to contain %q", lines[1], "Top Words")
	}
	if strings.Contains(out, "TOP WORDS") {
		t.Errorf("header was auto-formatted:\n%s", out)
	}

	pos := -1
	for _, word := range []string{"dog", "Cat", "x_train"} {
		i := strings.Index(out, "│ "+word)
		if i < 0 {
			t.Fatalf("row %q missing from table:\n%s", word, out)
		}
		if i < pos {
			t.Errorf("row %q rendered out of order", word)
		}
		pos = i
	}

	width := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != width {
			t.Errorf("line %d has width %d, want %d: %q", i, n, width, line)
		}
	}
}

func TestRenderTableRules(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTable(&buf, WordsHeader, []string{"dog", "Cat", "x_train"}); err != nil {
		t.Fatalf("RenderTable() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	wantPrefix := []string{"╒═", "│ Top Words", "╞═", "│ dog", "├─", "│ Cat", "├─", "│ x_train", "╘═"}
	if len(lines) != len(wantPrefix) {
		t.Fatalf("table has %d lines, want %d:\n%s", len(lines), len(wantPrefix), buf.String())
	}
	for i, want := range wantPrefix {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
	for _, i := range []int{4, 6} {
		if strings.ContainsAny(lines[i], "═╞╡") {
			t.Errorf("row separator %d uses double rules: %q", i, lines[i])
		}
	}
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTable(&buf, PasswordsHeader, nil); err != nil {
		t.Fatalf("RenderTable() error = %v", err)
	}
	if !strings.Contains(buf.String(), PasswordsHeader) {
		t.Errorf("empty table lost its header:\n%s", buf.String())
	}
}

func TestPresentStdout(t *testing.T) {
	tests := []struct {
		name          string
		report        models.Report
		wantPasswords bool
	}{
		{
			name:   "words only",
			report: models.Report{Words: []string{"dog", "cat"}},
		},
		{
			name:          "words and passwords",
			report:        models.Report{Words: []string{"dog", "cat"}, Passwords: []string{"dog1234!", "cat9900~"}},
			wantPasswords: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := New(&out, nil).Present(tt.report, "", FormatTable); err != nil {
				t.Fatalf("Present() error = %v", err)
			}
			got := out.String()

			words := strings.Index(got, WordsHeader)
			if words < 0 {
				t.Fatalf("missing word table:\n%s", got)
			}
			label := strings.Index(got, "\nPossible Passwords:\n")
			if !tt.wantPasswords {
				if strings.Contains(got, PasswordsHeader) {
					t.Errorf("password section rendered without passwords:\n%s", got)
				}
				return
			}
			if label < words {
				t.Fatalf("password label missing or before word table:\n%s", got)
			}
			if !strings.Contains(got[label:], "dog1234!") || !strings.Contains(got[label:], "cat9900~") {
				t.Errorf("password rows missing:\n%s", got)
			}
		})
	}
}

func TestPresentFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(dest, []byte("previous run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	report := models.Report{Words: []string{"dog"}, Passwords: []string{"dog0000!"}}
	if err := New(&stdout, nil).Present(report, dest, FormatTable); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("file output also wrote to stdout: %q", stdout.String())
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if strings.Contains(got, "previous run") {
		t.Errorf("file was not truncated:\n%s", got)
	}
	words := strings.Index(got, WordsHeader)
	label := strings.Index(got, "\nPassword Mutations:\n")
	pw := strings.Index(got, PasswordsHeader)
	if words != strings.Index(got, "Top") || words < 0 || label < words || pw < label {
		t.Errorf("unexpected file layout:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("file does not end with a newline")
	}
}

func TestPresentStructured(t *testing.T) {
	report := models.Report{Words: []string{"dog", "cat"}, Passwords: []string{"dog1234!"}}

	var jsonOut bytes.Buffer
	if err := New(&jsonOut, nil).Present(report, "", FormatJSON); err != nil {
		t.Fatalf("Present(json) error = %v", err)
	}
	var fromJSON models.Report
	if err := json.Unmarshal(jsonOut.Bytes(), &fromJSON); err != nil {
		t.Fatalf("invalid JSON %q: %v", jsonOut.String(), err)
	}
	if !reflect.DeepEqual(fromJSON, report) {
		t.Errorf("json round trip = %+v, want %+v", fromJSON, report)
	}

	dest := filepath.Join(t.TempDir(), "out.yaml")
	if err := New(&bytes.Buffer{}, nil).Present(models.Report{Words: []string{"dog"}}, dest, FormatYAML); err != nil {
		t.Fatalf("Present(yaml) error = %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "possible_passwords") {
		t.Errorf("yaml contains passwords that were not requested:\n%s", data)
	}
	var fromYAML models.Report
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if !reflect.DeepEqual(fromYAML.Words, []string{"dog"}) {
		t.Errorf("yaml words = %v, want [dog]", fromYAML.Words)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatTable},
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "csv", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
