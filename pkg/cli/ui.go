package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
)

const divider = "================================================================================="

type ui struct {
	out     io.Writer
	ok      *color.Color
	fail    *color.Color
	hint    *color.Color
	heading *color.Color
}

func newUI(out io.Writer) *ui {
	return &ui{
		out:     out,
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		hint:    color.New(color.FgYellow),
		heading: color.New(color.Bold),
	}
}

func (u *ui) println(a ...any) {
	fmt.Fprintln(u.out, a...)
}

func (u *ui) printf(format string, a ...any) {
	fmt.Fprintf(u.out, format, a...)
}

func (u *ui) success(format string, a ...any) {
	u.ok.Fprintf(u.out, format+"\n", a...)
}

func (u *ui) failure(err error) {
	u.fail.Fprintln(u.out, err)
}

func (u *ui) hintf(format string, a ...any) {
	u.hint.Fprintf(u.out, format+"\n", a...)
}

func (u *ui) title(s string) {
	u.heading.Fprintln(u.out, s)
	u.println(strings.Repeat("-", 11))
}

// table renders rows with a plain border so it stays readable when
// colors are off.
func (u *ui) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	u.println(t.Render())
}
