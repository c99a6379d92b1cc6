package clop

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/clop/internal/text"
	"github.com/napalu/clop/util"
)

const (
	sectionIndent = "    "
	optionDelim   = "\n        "
)

// PrintHelp writes the synopsis, version, compile info, usage and option descriptions to
// writer. Text is wrapped to the terminal width when writer is a terminal (80 columns
// otherwise) and headings are highlighted on terminals only.
func (p *Parser) PrintHelp(writer io.Writer, info HelpInfo) error {
	tty, width := util.Probe(writer, p.terminal)
	hl := highlighter(tty)
	cols := func(n int) int {
		return util.Max(width-n, 1)
	}

	var b strings.Builder
	b.WriteString("\n")

	if info.Synopsis != "" {
		b.WriteString(hl.Sprint("Synopsis") + ":\n\n" + sectionIndent)
		b.WriteString(text.Wrap(info.Synopsis, cols(4), cols(4), "\n"+sectionIndent))
		b.WriteString("\n\n")
	}
	if info.Version != "" {
		b.WriteString(hl.Sprint("Version") + ":  ")
		b.WriteString(text.Wrap(info.Version, cols(10), width, "\n"))
		b.WriteString("\n\n")
	}
	if CompileInfo != "" {
		b.WriteString(hl.Sprint("Compile info") + ":  ")
		b.WriteString(text.Wrap(CompileInfo, cols(15), width, "\n"))
		b.WriteString("\n\n")
	}
	if info.Usage != "" {
		b.WriteString(hl.Sprint("Usage") + ":  ")
		b.WriteString(text.Wrap(info.Usage, cols(8), width, "\n"))
		b.WriteString("\n\n")
	}

	options := p.registry.list()
	if len(options) > 0 {
		b.WriteString(hl.Sprint("Options"))
		b.WriteString(text.Wrap(":", cols(7), width, "\n"))
		b.WriteString("\n\n")
	}

	indent := len(optionDelim) - 1
	for _, option := range options {
		b.WriteString(sectionIndent)
		b.WriteString(hl.Sprint(p.renderer.FlagList(option)))
		b.WriteString(" " + hl.Sprint(p.renderer.Metavar(option)))
		b.WriteString(optionDelim)

		description := p.renderer.Description(option)
		if info.ShowDefaults && option.RequiresValue() {
			description += hl.Sprint(p.renderer.DefaultNote(option))
		}
		b.WriteString(text.Wrap(description, cols(indent), cols(indent), optionDelim))
		b.WriteString("\n\n")
	}

	_, err := io.WriteString(writer, b.String())
	return err
}

func highlighter(tty bool) *color.Color {
	c := color.New(color.Bold)
	if tty {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}
