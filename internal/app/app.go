// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"dicestats/internal/cli"
	"dicestats/internal/cliutil"
	"dicestats/internal/config"
	"dicestats/internal/output"
	"dicestats/internal/version"
)

// RunContext drives one invocation: flag parsing, command dispatch, and
// rendering. Exit codes: 0 on success (broken pipe included), 1 for
// everything else, 130 when the context was cancelled mid-run.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dicestats")
	fs.SetOutput(io.Discard)
	cli.Usage(fs, "dicestats")

	defs := cli.Defaults{Input: "./*.txt", OutDir: "./out"}
	envCfg, err := config.FromEnv()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if envCfg.Input != "" {
		defs.Input = envCfg.Input
	}
	if envCfg.OutDir != "" {
		defs.OutDir = envCfg.OutDir
	}

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	opts, err := cli.ParseArgs(fs, flagArgs, defs)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 1)
	}
	opts.Args = posArgs

	cmds := newCommandSet()

	if opts.Version {
		// Version is informational only; processing continues.
		_, _ = fmt.Fprintf(outw, "dicestats version %s\n", version.Version)
	}

	if len(opts.Args) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		cmds.writeSummaries(outw)
		return flushCode(outw, stderr, 1)
	}

	cmd, ok := cmds.lookup(opts.Args[0])
	if !ok {
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n", opts.Args[0])
		fs.SetOutput(outw)
		fs.Usage()
		cmds.writeSummaries(outw)
		return flushCode(outw, stderr, 1)
	}
	opts.Args = opts.Args[1:]

	if err := cmd.run(ctx, opts, outw); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 130
		}
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return flushCode(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flushCode flushes buffered output, preferring the original exit code;
// a broken pipe on flush still counts as success.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); err != nil && !output.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		if code == 0 {
			return 1
		}
	}
	return code
}
