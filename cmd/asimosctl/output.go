package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
)

// printer выводит результат команды выровненным текстом или JSON.
type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	return &printer{w: w, json: asJSON}
}

// Result печатает v как JSON либо вызывает text для текстового вывода.
func (p *printer) Result(v any, text func()) error {
	if p.json {
		return p.JSON(v)
	}
	text()
	return nil
}

func (p *printer) JSON(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, string(raw))
	return err
}

// Table - колонки, выровненные табуляцией.
func (p *printer) Table(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = dash(oneLine(cell))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

// Fields - пары "ключ: значение" одной колонкой.
func (p *printer) Fields(pairs ...string) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(tw, "%s:\t%s\n", pairs[i], dash(pairs[i+1]))
	}
	tw.Flush()
}

func (p *printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// OK - результат команды без данных.
func (p *printer) OK(message string) error {
	if p.json {
		return p.JSON(map[string]any{"ok": true, "message": message})
	}
	p.Line("%s", message)
	return nil
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
