package main

import (
	"LineFinder/internal"
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	appName    = "LineFinder"
	appVersion = "0.1.0"

	exitFailure = 1 // I/O or output failure
	exitUsage   = 2 // bad flags or missing arguments
)

// deps are the process collaborators, swapped out in tests.
type deps struct {
	stdin  *os.File
	env    internal.LookupEnv
	source internal.SourceReader
	exit   func(code int)
}

func main() {
	app := newApp(deps{
		stdin:  os.Stdin,
		env:    os.LookupEnv,
		source: internal.NewFileSource(),
		exit:   os.Exit,
	})
	if err := app.Run(os.Args); err != nil {
		os.Exit(exitFailure)
	}
}

func newApp(d deps) *cli.App {
	return &cli.App{
		Name:      appName,
		Usage:     "Print lines matching a query from a file or piped input",
		UsageText: appName + " [OPTION]... QUERY [FILE]",
		Version:   appVersion,
		// flags may follow positionals and use single-dash long forms (-ic),
		// so tokens go to the option resolver untouched
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Before: func(c *cli.Context) error {
			logfile, _ := d.env("LOGFILE")
			level, _ := d.env("LOG_LEVEL")
			internal.InitLogger(logfile, level)
			return nil
		},
		Action: func(c *cli.Context) error {
			res, err := internal.ResolveOptions(c.Args().Slice(), d.env)
			if err != nil {
				return usageExit(c, err)
			}
			switch res.Outcome {
			case internal.OutcomeHelp:
				fmt.Fprint(c.App.Writer, internal.Usage(c.App.Name))
				return nil
			case internal.OutcomeVersion:
				fmt.Fprintf(c.App.Writer, "%s (%s)\n", c.App.Name, c.App.Version)
				return nil
			}
			logrus.WithFields(logrus.Fields{
				"args":        res.Positional,
				"ignore_case": res.Options.IgnoreCase,
			}).Debug("Options resolved")

			// an explicit FILE wins, stdin is left alone
			var piped *string
			if len(res.Positional) < 2 {
				content, ok, err := internal.CapturePiped(d.stdin)
				if err != nil {
					return cli.Exit("Application error: "+err.Error(), exitFailure)
				}
				if ok {
					piped = &content
				}
			}

			cfg, err := internal.BuildConfig(res.Positional, piped, res.Options)
			if err != nil {
				return usageExit(c, err)
			}

			out := bufio.NewWriter(c.App.Writer)
			var stats internal.AppStats
			runErr := internal.NewLineScanner(d.source, out, &stats).Run(c.Context, cfg)
			if err := out.Flush(); err != nil && runErr == nil {
				runErr = err
			}
			if runErr != nil {
				return cli.Exit("Application error: "+runErr.Error(), exitFailure)
			}
			return nil
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			code := exitFailure
			var ec cli.ExitCoder
			if errors.As(err, &ec) {
				code = ec.ExitCode()
			}
			if msg := err.Error(); msg != "" {
				fmt.Fprintln(c.App.ErrWriter, msg)
			}
			d.exit(code)
		},
	}
}

func usageExit(c *cli.Context, err error) error {
	code := exitFailure
	if internal.IsUsageError(err) {
		code = exitUsage
	}
	return cli.Exit(fmt.Sprintf("Problem parsing arguments: %v\n\n%s", err, strings.TrimSuffix(internal.Usage(c.App.Name), "\n")), code)
}
