// Package presenter renders ranked words and password candidates as bordered
// tables (or JSON/YAML) to stdout or a file.
package presenter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/wordharvest/models"
	"github.com/dtnitsch/wordharvest/pkg/storage"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"
)

const (
	WordsHeader     = "Top Words"
	PasswordsHeader = "Possible Passwords"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts table, json or yaml (case-insensitive). Empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

var (
	gridSymbols = tw.NewSymbols(tw.StyleDoubleLight)
	rowSymbols  = tw.NewSymbols(tw.StyleLight)
)

// fancyGrid draws double rules around the table and under the header, and
// light rules between body rows.
type fancyGrid struct {
	*renderer.Blueprint
}

func (g fancyGrid) Line(ctx tw.Formatting) {
	if ctx.Level == tw.LevelBody && ctx.Row.Position == tw.Row && ctx.Row.Location == tw.LocationMiddle {
		g.Rendition(tw.Rendition{Symbols: rowSymbols})
		defer g.Rendition(tw.Rendition{Symbols: gridSymbols})
	}
	g.Blueprint.Line(ctx)
}

// RenderTable writes rows as a single-column grid with header on top.
func RenderTable(w io.Writer, header string, rows []string) error {
	grid := fancyGrid{renderer.NewBlueprint(tw.Rendition{
		Symbols: gridSymbols,
		Settings: tw.Settings{
			Separators: tw.Separators{BetweenRows: tw.On},
		},
	})}
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(grid),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header(header)
	for _, row := range rows {
		if err := table.Append([]string{row}); err != nil {
			return fmt.Errorf("failed to add table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

type Presenter struct {
	stdout  io.Writer
	storage *storage.Storage
}

func New(stdout io.Writer, s *storage.Storage) *Presenter {
	if s == nil {
		s = &storage.Storage{}
	}
	return &Presenter{stdout: stdout, storage: s}
}

// Present writes report to stdout when dest is empty, otherwise to the file
// dest. For tables the word section truncates the file and the password
// section is appended after it.
func (p *Presenter) Present(report models.Report, dest string, format Format) error {
	if format != FormatTable {
		data, err := marshal(report, format)
		if err != nil {
			return err
		}
		if dest == "" {
			_, err = p.stdout.Write(data)
			return err
		}
		return p.storage.SaveFile(dest, data)
	}

	words, err := tableBytes(WordsHeader, report.Words)
	if err != nil {
		return err
	}
	if dest == "" {
		if _, err := p.stdout.Write(words); err != nil {
			return err
		}
	} else if err := p.storage.SaveFile(dest, words); err != nil {
		return err
	}

	if report.Passwords == nil {
		return nil
	}

	passwords, err := tableBytes(PasswordsHeader, report.Passwords)
	if err != nil {
		return err
	}
	if dest == "" {
		_, err = fmt.Fprintf(p.stdout, "%s:\n%s", PasswordsHeader, passwords)
		return err
	}
	return p.storage.AppendFile(dest, append([]byte("Password Mutations:\n"), passwords...))
}

func tableBytes(header string, rows []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderTable(&buf, header, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshal(report models.Report, format Format) ([]byte, error) {
	if report.Words == nil {
		report.Words = []string{}
	}
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
