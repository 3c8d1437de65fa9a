package internal

import (
	"fmt"
	"strings"
)

// Flag identifies a recognized command-line option.
type Flag int

const (
	FlagHelp Flag = iota + 1
	FlagVersion
	FlagIgnoreCase
)

// IgnoreCaseEnv enables case-insensitive search when present in the environment.
const IgnoreCaseEnv = "IGNORE_CASE"

type flagSpec struct {
	flag      Flag
	spellings []string
	usage     string
}

// flagTable is the single source for parsing and for the usage text.
var flagTable = []flagSpec{
	{FlagHelp, []string{"--help", "-h"}, "Print this help and exit"},
	{FlagVersion, []string{"--version", "-v"}, "Print name and version and exit"},
	{FlagIgnoreCase, []string{"--ignore_case", "-ic"}, "Case-insensitive search (also enabled by $" + IgnoreCaseEnv + ")"},
}

var spellingToFlag = func() map[string]Flag {
	m := make(map[string]Flag)
	for _, s := range flagTable {
		for _, sp := range s.spellings {
			m[sp] = s.flag
		}
	}
	return m
}()

// LookupEnv matches os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// Outcome tells the caller what a successful resolution asks for.
type Outcome int

const (
	OutcomeSearch Outcome = iota
	OutcomeHelp
	OutcomeVersion
)

// ResolvedOptions - behaviour switches derived once per run.
type ResolvedOptions struct {
	IgnoreCase bool
}

// Resolution is the result of splitting the raw arguments.
type Resolution struct {
	Positional []string
	Options    ResolvedOptions
	Outcome    Outcome
}

// ResolveOptions partitions args (program name already removed) into flag
// tokens and positional tokens, keeping relative order, and validates every
// flag. Any unrecognized flag fails the whole resolution, even next to --help.
func ResolveOptions(args []string, env LookupEnv) (Resolution, error) {
	var (
		res   Resolution
		flags []Flag
	)
	res.Positional = make([]string, 0, len(args))
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			res.Positional = append(res.Positional, a)
			continue
		}
		f, ok := spellingToFlag[a]
		if !ok {
			return Resolution{}, &InvalidParameterError{Token: a}
		}
		flags = append(flags, f)
	}

	var help, version bool
	for _, f := range flags {
		switch f {
		case FlagHelp:
			help = true
		case FlagVersion:
			version = true
		case FlagIgnoreCase:
			res.Options.IgnoreCase = true
		}
	}
	switch {
	case help:
		res.Outcome = OutcomeHelp
	case version:
		res.Outcome = OutcomeVersion
	}

	if !res.Options.IgnoreCase && env != nil {
		_, res.Options.IgnoreCase = env(IgnoreCaseEnv)
	}
	return res, nil
}

// Usage renders the help text for the given program name.
func Usage(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [OPTION]... QUERY [FILE]\n", name)
	b.WriteString("Print lines of FILE (or of piped standard input) containing QUERY.\n\nOptions:\n")
	for _, s := range flagTable {
		fmt.Fprintf(&b, "  %-22s %s\n", strings.Join(s.spellings, ", "), s.usage)
	}
	return b.String()
}
