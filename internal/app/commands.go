// internal/app/commands.go
package app

import (
	"context"
	"fmt"
	"io"

	"dicestats-core/dicestats"
	"dicestats-core/rollfile"
	"dicestats/internal/cli"
	"dicestats/internal/output"
)

// command is one dispatchable subcommand: its name, the one-line summary
// shown by the command list, the full help text, and the handler.
type command struct {
	name    string
	summary string
	doc     string
	run     func(ctx context.Context, opts cli.Options, stdout io.Writer) error
}

// commandSet is the static dispatch table, populated once at startup.
type commandSet struct {
	order  []string
	byName map[string]command
}

func newCommandSet() *commandSet {
	cs := &commandSet{byName: map[string]command{}}

	cs.add(command{
		name:    "basic",
		summary: "show basic analysis of the dice data",
		doc: `show basic analysis of the dice data

basic analysis loads die roll data and displays simple textual
information about the rolls, including overall counts, the average
value rolled, and an ASCII histogram.
`,
		run: runBasic,
	})
	cs.add(command{
		name:    "chi_sq",
		summary: "run a chi squared analysis of a die's rolls",
		doc: `run a chi squared analysis of a die's rolls

the chi squared analysis runs a standard chi squared test on each die
file separately, comparing the die's rolls to the expected rolls of a
perfectly fair die.
`,
		run: runChiSq,
	})
	cs.add(command{
		name:    "help",
		summary: "print help for a specific command or list all commands",
		doc: `print help for a specific command or list all commands

e.g. help basic
`,
		run: cs.runHelp,
	})
	return cs
}

func (cs *commandSet) add(c command) {
	cs.order = append(cs.order, c.name)
	cs.byName[c.name] = c
}

func (cs *commandSet) lookup(name string) (command, bool) {
	c, ok := cs.byName[name]
	return c, ok
}

// writeSummaries prints one line per command in registration order.
func (cs *commandSet) writeSummaries(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	for _, name := range cs.order {
		fmt.Fprintf(w, "  %-16s %s\n", name, cs.byName[name].summary)
	}
}

func (cs *commandSet) runHelp(_ context.Context, opts cli.Options, stdout io.Writer) error {
	if len(opts.Args) == 0 {
		cs.writeSummaries(stdout)
		return nil
	}
	c, ok := cs.lookup(opts.Args[0])
	if !ok {
		return fmt.Errorf("unknown command %q", opts.Args[0])
	}
	_, err := fmt.Fprint(stdout, c.doc)
	return err
}

// runBasic parses each selected die file and renders its descriptive
// summary in file-arrival order. A malformed file aborts the whole run.
func runBasic(ctx context.Context, opts cli.Options, stdout io.Writer) error {
	paths, err := rollfile.Select(opts.Input, rollfile.DefaultSuffix)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := rollfile.ParseFile(path)
		if err != nil {
			return err
		}
		sum, err := dicestats.Summarize(rec.Counts)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := output.WriteBasic(stdout, rec.Name(), sum); err != nil {
			return err
		}
	}
	return nil
}

// runChiSq parses all selected die files, tests each against the fair
// die hypothesis, and renders results in description order.
func runChiSq(ctx context.Context, opts cli.Options, stdout io.Writer) error {
	paths, err := rollfile.Select(opts.Input, rollfile.DefaultSuffix)
	if err != nil {
		return err
	}
	records := make([]rollfile.Record, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := rollfile.ParseFile(path)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}
	results, err := dicestats.ChiSquaredAll(records)
	if err != nil {
		return err
	}
	return output.WriteChiSquared(stdout, results)
}
