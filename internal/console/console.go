// SPDX-License-Identifier: MIT
// Package console renders wgraph results for the terminal with lipgloss.
// Color follows output.color: "always" forces ANSI, "never" strips it,
// "auto" lets lipgloss inspect the writer.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

var (
	colorTeal  = lipgloss.Color("#20B9B4")
	colorGold  = lipgloss.Color("#F4D03F")
	colorRed   = lipgloss.Color("#E74C3C")
	colorSlate = lipgloss.Color("#2C4A54")
)

// Printer writes styled output to one writer.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
}

// New returns a Printer for w. color is "auto", "always" or "never".
func New(w io.Writer, color string) *Printer {
	r := lipgloss.NewRenderer(w)
	switch color {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(colorTeal),
		label:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(colorSlate),
		warning: r.NewStyle().Foreground(colorGold),
		err:     r.NewStyle().Foreground(colorRed),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Title prints a bold heading line.
func (p *Printer) Title(format string, args ...any) {
	fmt.Fprintln(p.w, p.title.Render(fmt.Sprintf(format, args...)))
}

// Line prints plain text.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Warn prints a highlighted warning.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.w, p.warning.Render("! "+fmt.Sprintf(format, args...)))
}

// Error prints err in the error color.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.err.Render("error: "+err.Error()))
}

// Bool prints "label: yes" or "label: no".
func (p *Printer) Bool(label string, v bool) {
	ans := "no"
	if v {
		ans = "yes"
	}
	fmt.Fprintf(p.w, "%s %s\n", p.label.Render(label+":"), ans)
}

// Distances prints one "src -> dst: d" line per vertex; negative distances
// print as -1 followed by a muted "(unreachable)".
func (p *Printer) Distances(source string, labels []string, dist []int64) {
	for i, l := range labels {
		d := strconv.FormatInt(dist[i], 10)
		if dist[i] < 0 {
			d += " " + p.muted.Render("(unreachable)")
		}
		fmt.Fprintf(p.w, "%s -> %s: %s\n", source, p.label.Render(l), d)
	}
}

// Sequence prints labels joined by arrows, e.g. a -> e -> d.
func (p *Printer) Sequence(labels []string) {
	fmt.Fprintln(p.w, strings.Join(labels, " -> "))
}

// Table prints a labelled square matrix; negative cells print as "-".
func (p *Printer) Table(labels []string, rows [][]int64) {
	headers := append([]string{""}, labels...)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.muted).
		Headers(headers...)
	for i, row := range rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, labels[i])
		for _, v := range row {
			if v < 0 {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, strconv.FormatInt(v, 10))
		}
		t.Row(cells...)
	}
	fmt.Fprintln(p.w, t.String())
}
