// Package reporters provides ready-made reporting hooks for
// confmap.Validate.
package reporters

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/sxwebdev/confmap"
)

// Writer reports every message to w, one per line.
func Writer(w io.Writer) confmap.Reporter {
	return func(message string, _ confmap.Report) {
		fmt.Fprintln(w, message)
	}
}

// Collector accumulates everything reported during a Validate call.
// The zero value is ready to use; pass its Report method as the hook.
type Collector struct {
	Messages []string
	Reports  []confmap.Report
}

// Report is the confmap.Reporter of the Collector.
func (c *Collector) Report(message string, report confmap.Report) {
	c.Messages = append(c.Messages, message)
	c.Reports = append(c.Reports, report)
}

// Logger reports failures through a zerolog logger at warn level, with
// the failure context attached as structured fields.
func Logger(log zerolog.Logger) confmap.Reporter {
	return func(message string, report confmap.Report) {
		log.Warn().
			Str("path", report.Path).
			Str("name", report.Name).
			Bool("missing", report.Missing).
			Interface("value", report.Value).
			Msg(message)
	}
}
