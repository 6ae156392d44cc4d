package summarizer

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter renders a Summary as file content.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc adapts a function to Formatter.
type FormatFunc func(summary *Summary) string

func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// YAMLFormatter renders a Summary as a YAML document for scripts that
// post-process runs.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format implements Formatter. Elapsed is written as a Go duration string.
func (f *YAMLFormatter) Format(s *Summary) string {
	doc := struct {
		Summary `yaml:",inline"`
		Elapsed string `yaml:"elapsed"`
	}{*s, s.Elapsed.String()}

	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "# " + err.Error() + "\n"
	}
	enc.Close()
	return sb.String()
}

// FormatterFor picks a Formatter from the summary path:
// .yaml and .yml get YAML, everything else Markdown.
func FormatterFor(path string) Formatter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLFormatter()
	default:
		return NewMarkdownFormatter()
	}
}
