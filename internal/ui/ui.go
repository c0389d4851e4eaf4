package ui

import (
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

type Printer struct {
	out    io.Writer
	accent lipgloss.Style
	faint  lipgloss.Style
}

// NewPrinter styles messages for out using out's own color profile.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:    out,
		accent: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		faint:  r.NewStyle().Faint(true),
	}
}

func (p *Printer) Banner(host string, port int, raw bool) string {
	target := net.JoinHostPort(host, strconv.Itoa(port))
	hint := "input is not a terminal"
	if raw {
		hint = "Ctrl-C to exit"
	}
	return p.accent.Render("console "+target) + " " + p.faint.Render("("+hint+")")
}

func (p *Printer) Goodbye() string {
	return p.faint.Render("console closed")
}

// Println writes a line. The terminal must not be in raw mode.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}
