package internal

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// LineScanner runs a search config against its source and writes matches.
type LineScanner struct {
	src   SourceReader
	out   io.Writer
	stats *AppStats
}

// NewLineScanner - stats may be nil.
func NewLineScanner(src SourceReader, out io.Writer, stats *AppStats) *LineScanner {
	if stats == nil {
		stats = &AppStats{}
	}
	return &LineScanner{src: src, out: out, stats: stats}
}

// Run takes piped content when the config carries it, otherwise reads
// cfg.Path. Read failures come back as *IoFailureError.
func (s *LineScanner) Run(ctx context.Context, cfg *SearchConfig) error {
	s.stats.Start()

	content, ok := cfg.Content()
	if ok {
		logrus.Debug("Searching piped input")
	} else {
		logrus.WithField("file", cfg.Path).Debug("Reading input file")
		body, err := s.src.ReadSource(ctx, cfg.Path)
		if err != nil {
			return &IoFailureError{Path: cfg.Path, Err: err}
		}
		cfg.SetContent(body)
		content, _ = cfg.Content()
	}
	s.stats.BytesScanned = len(content)
	s.stats.LinesScanned = countLines(content)

	for _, line := range Search(cfg.Query, content, cfg.Options.IgnoreCase) {
		if _, err := fmt.Fprintln(s.out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		s.stats.LinesMatched++
	}

	logrus.WithFields(logrus.Fields{
		"bytes":   s.stats.BytesScanned,
		"lines":   s.stats.LinesScanned,
		"matches": s.stats.LinesMatched,
		"elapsed": s.stats.Elapsed(),
	}).Debug("Search finished")
	return nil
}
