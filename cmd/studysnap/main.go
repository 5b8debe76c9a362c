// Command studysnap is the terminal client: it sends source text to a
// StudySnap server and runs the returned flashcards and quiz interactively.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/phrazzld/studysnap/internal/config"
	"github.com/phrazzld/studysnap/internal/platform/logger"
	"github.com/phrazzld/studysnap/internal/studyclient"
)

type options struct {
	file     string
	exportTo string
	noColor  bool
	verbose  bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "studysnap: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("studysnap", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringP("server", "s", "http://localhost:3000", "StudySnap server base URL")
	fs.Int("timeout", 90, "request timeout in seconds")
	fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	fs.StringVarP(&opts.file, "file", "f", "", "read source text from a file instead of stdin")
	fs.StringVarP(&opts.exportTo, "export", "o", "", "save each generated study set to this xlsx file")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadClient(fs)
	if err != nil {
		return err
	}

	level := cfg.Client.LogLevel
	if opts.verbose {
		level = "debug"
	}
	log := logger.New(stderr, level)
	client := studyclient.New(cfg.Client.ServerURL, time.Duration(cfg.Client.TimeoutSeconds)*time.Second, log)

	s := newSession(client, bufio.NewReader(stdin), newRenderer(stdout, opts.noColor), log)
	s.exportTo = opts.exportTo

	if opts.file != "" {
		raw, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", opts.file, err)
		}
		s.pending = strings.TrimRight(string(raw), "\n")
	}

	return s.run(ctx)
}
