package internal

import "github.com/sirupsen/logrus"

// SearchConfig describes one search run.
type SearchConfig struct {
	Query   string
	Path    string
	Options ResolvedOptions

	content    string
	hasContent bool
}

// BuildConfig validates positional arguments. The query is always required;
// the path is required unless content was already captured from a pipe.
// content is nil when nothing was piped in.
func BuildConfig(positional []string, content *string, opts ResolvedOptions) (*SearchConfig, error) {
	need := 2
	if content != nil {
		need = 1
	}
	if len(positional) < need {
		return nil, ErrNotEnoughArguments
	}
	if len(positional) > 2 {
		logrus.Warnf("Ignoring extra arguments: %v", positional[2:])
	}

	cfg := &SearchConfig{Query: positional[0], Options: opts}
	if len(positional) > 1 {
		cfg.Path = positional[1]
	}
	if content != nil {
		cfg.SetContent(*content)
	}
	return cfg, nil
}

// Content returns the preloaded search body, if any.
func (c *SearchConfig) Content() (string, bool) { return c.content, c.hasContent }

// SetContent fills the search body. Only the first call has an effect.
func (c *SearchConfig) SetContent(s string) {
	if c.hasContent {
		return
	}
	c.content, c.hasContent = s, true
}
