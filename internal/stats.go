package internal

import (
	"strings"
	"time"
)

// AppStats counters for one run
type AppStats struct {
	start        time.Time
	BytesScanned int
	LinesScanned int
	LinesMatched int
}

func (s *AppStats) Start() {
	s.start = time.Now()
}

func (s *AppStats) Elapsed() time.Duration {
	return time.Since(s.start)
}

// countLines counts lines the way Search splits them: a trailing
// newline does not open an extra empty line.
func countLines(content string) int {
	n := strings.Count(content, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
