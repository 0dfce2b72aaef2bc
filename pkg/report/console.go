// Package report renders run outcomes to the console and asks the
// user whether to proceed with the transfer. The core engine only
// produces structured outcomes; everything user-facing lives here.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/autofiler/autofiler/pkg/transfer"
	"github.com/autofiler/autofiler/pkg/types"
)

const ruleWidth = 80

// Console writes reports to out and reads confirmations from in. Both
// are injected so tests can drive the prompt.
type Console struct {
	out   io.Writer
	in    *bufio.Reader
	color bool
}

// NewConsole creates a console reporter. Styling is applied only when
// out is a real terminal.
func NewConsole(out io.Writer, in io.Reader) *Console {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Console{
		out:   out,
		in:    bufio.NewReader(in),
		color: color,
	}
}

// RenderMatches prints every matched and failed file with its
// outcome message, then the run totals. Skipped files appear only as
// an aggregate count together with the expected naming format.
func (c *Console) RenderMatches(summary *types.RunSummary, nameFormat string) {
	for _, file := range summary.Matched {
		fmt.Fprintln(c.out, file.Message)
	}
	for _, file := range summary.Failed {
		fmt.Fprintln(c.out, file.Message)
	}

	c.rule()
	fmt.Fprintf(c.out, "%s %d file(s)\n", c.good("SUCCESSFULLY MATCHED:"), len(summary.Matched))
	fmt.Fprintf(c.out, "%s %d file(s)\n", c.bad("FAILED TO MATCH     :"), len(summary.Failed))

	if summary.SkippedCount > 0 {
		fmt.Fprintf(c.out, "\nSkipped %d file(s) due to insufficient field entries.\nRequired format: %s\n",
			summary.SkippedCount, nameFormat)
	}
	c.rule()
}

// Confirm asks a y/n question and re-asks until it gets one of the
// two. Returns true for yes.
func (c *Console) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.out, "\n%s (y for YES | n for NO)\n>>> ", question)
	for {
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprint(c.out, "Invalid input, please enter y or n\n>>> ")
	}
}

// RenderTransfers prints the per-file move outcomes and the final
// count
func (c *Console) RenderTransfers(summary *transfer.Summary) {
	for _, result := range summary.Results {
		if result.Err != nil {
			fmt.Fprintf(c.out, "%s %s\n", dotPad(result.File.Name, 74), c.bad("FAILED!"))
		} else {
			fmt.Fprintf(c.out, "%s %s\n", dotPad(result.File.Name, 74), c.good("DONE"))
		}
	}

	c.rule()
	verb := "TRANSFERRED"
	if summary.DryRun {
		verb = "WOULD TRANSFER"
	}
	fmt.Fprintf(c.out, "%s: %d file(s)\n", verb, summary.Moved)
	c.rule()
}

// Println writes a plain line to the console
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) rule() {
	fmt.Fprintln(c.out, strings.Repeat("-", ruleWidth))
}

func (c *Console) good(s string) string {
	if !c.color {
		return s
	}
	return pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint(s)
}

func (c *Console) bad(s string) string {
	if !c.color {
		return s
	}
	return pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(s)
}

// dotPad left-justifies s padded with dots to the given width
func dotPad(s string, width int) string {
	s += "  "
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(".", width-len(s))
}
