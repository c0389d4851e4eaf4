package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fpgaconsole/internal/capture"
	"fpgaconsole/internal/core"
	"fpgaconsole/internal/shell"
	"fpgaconsole/internal/terminal"
	"fpgaconsole/internal/ui"
	"fpgaconsole/internal/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type options struct {
	config  core.Config
	replay  string
	verbose bool
}

var errUsage = errors.New("usage")

// parseArgs accepts the address either as the only positional argument or
// through -a/--address, never both. An address starting with '-' is refused.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{config: core.DefaultConfig()}

	fs := pflag.NewFlagSet("fpgaconsole", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.config.Address, "address", "a", "", "Target IP name or address")
	fs.IntVarP(&opts.config.Port, "port", "p", utils.ConsolePort, "Console UDP port")
	fs.StringVar(&opts.config.Capture, "capture", "", "Write received text to `FILE` (.zst, .gz, .sz compress)")
	fs.Var(&opts.config.Invalid, "invalid", "Handling of non-ASCII bytes: fatal, replace or drop")
	fs.StringVar(&opts.replay, "replay", "", "Print a saved transcript `FILE` and exit")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fpgaconsole [flags] [ADDRESS]\n\nCommunicate with FPGA console.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.replay != "" {
		return opts, nil
	}

	switch {
	case fs.NArg() > 1:
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args()[1:])
		fs.Usage()
		return nil, errUsage
	case fs.NArg() == 1 && opts.config.Address != "":
		fmt.Fprintf(stderr, "address given twice: %q and %q\n", opts.config.Address, fs.Arg(0))
		fs.Usage()
		return nil, errUsage
	case fs.NArg() == 1:
		opts.config.Address = fs.Arg(0)
	}

	switch {
	case opts.config.Address == "":
		fs.Usage()
		return nil, errUsage
	case strings.HasPrefix(opts.config.Address, "-"):
		fmt.Fprintf(stderr, "invalid address %q\n", opts.config.Address)
		fs.Usage()
		return nil, errUsage
	}
	return opts, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin, stdout, stderr *os.File) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	utils.SetUpLogrus(stderr, opts.verbose)

	if opts.replay != "" {
		if err := replay(opts.replay, stdout); err != nil {
			logrus.Error(err)
			return 1
		}
		return 0
	}

	if err := console(opts.config, stdin, stdout, stderr); err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}

func replay(path string, stdout io.Writer) error {
	text, err := capture.ReadAll(path)
	if err != nil {
		return err
	}
	_, err = stdout.Write(text)
	return err
}

func console(cfg core.Config, stdin, stdout, stderr *os.File) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	conn, err := core.Dial(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	session := &core.Session{
		Config: cfg,
		Conn:   conn,
		Keys:   shell.NewReader(stdin),
		Out:    bufio.NewWriterSize(stdout, cfg.BufferSize*2),
	}

	if err := session.Handshake(); err != nil {
		return err
	}

	session.Capture, err = capture.Open(cfg.Capture)
	if err != nil {
		return err
	}
	if session.Capture != nil {
		logrus.Debugf("Writing %s transcript to %s", session.Capture.Codec, session.Capture.Path)
	}

	printer := ui.NewPrinter(stderr)
	printer.Println(printer.Banner(cfg.Address, cfg.Port, terminal.IsTerminal(stdin)))

	tty, err := terminal.Open(stdin)
	if err != nil {
		session.Capture.Close()
		return err
	}
	defer func() {
		if restoreErr := tty.Restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
		if err == nil {
			printer.Println(printer.Goodbye())
		}
	}()

	return session.Run(ctx)
}
