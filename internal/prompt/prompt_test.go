package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "first answer", input: "http://example.com\n", want: "http://example.com"},
		{name: "blank lines are asked again", input: "\n  \nhttp://x\n", want: "http://x"},
		{name: "answer without newline", input: "http://y", want: "http://y"},
		{name: "no input", input: "", wantErr: ErrNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := New(strings.NewReader(tt.input), &out).String("Web Url")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("String() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if !strings.HasPrefix(out.String(), "Web Url: ") {
				t.Errorf("prompt = %q, want it to start with %q", out.String(), "Web Url: ")
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "explicit value", input: "3\n", want: 3},
		{name: "empty answer uses default", input: "\n", want: 0},
		{name: "end of input uses default", input: "", want: 0},
		{name: "invalid then valid", input: "two\n2\n", want: 2},
		{name: "invalid at end of input uses default", input: "two", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := New(strings.NewReader(tt.input), &out).Int("Depth", 0)
			if err != nil {
				t.Fatalf("Int() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
			if !strings.HasPrefix(out.String(), "Depth [0]: ") {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestSharedReader(t *testing.T) {
	p := New(strings.NewReader("http://seed\n4\n"), &bytes.Buffer{})

	url, err := p.String("Web Url")
	if err != nil || url != "http://seed" {
		t.Fatalf("String() = %q, %v", url, err)
	}
	depth, err := p.Int("Depth", 0)
	if err != nil || depth != 4 {
		t.Fatalf("Int() = %d, %v", depth, err)
	}
}
