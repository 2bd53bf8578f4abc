package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/samplerate/internal/contract"
	"github.com/huangsam/samplerate/schema"
)

// Histogram bar bounds in characters.
const (
	minBarWidth = 10
	maxBarWidth = 60
)

// writeHistogram renders a rate distribution as horizontal bars.
func writeHistogram(writer io.Writer, label string, h schema.RateHistogram, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(writer, "%s: Sampling Rate Distribution (Hz)\n", label); err != nil {
		return err
	}

	ranges := make([]string, len(h.Bins))
	rangeWidth := 0
	for i, b := range h.Bins {
		ranges[i] = fmt.Sprintf("%s - %s", fmtFloat(b.Lower), fmtFloat(b.Upper))
		rangeWidth = max(rangeWidth, len(ranges[i]))
	}
	countWidth := len(fmt.Sprint(h.MaxCount()))
	barWidth := getMaxBarWidth(cfg, rangeWidth+countWidth+4)

	maxCount := h.MaxCount()
	for i, b := range h.Bins {
		n := 0
		if maxCount > 0 {
			n = b.Count * barWidth / maxCount
		}
		if b.Count > 0 && n == 0 {
			n = 1 // keep sparse bins visible
		}
		if _, err := fmt.Fprintf(writer, "%*s | %-*s %*d\n", rangeWidth, ranges[i], barWidth, strings.Repeat("█", n), countWidth, b.Count); err != nil {
			return err
		}
	}
	if h.NonFinite > 0 {
		if _, err := fmt.Fprintf(writer, "Non-finite rates (zero or undefined interval): %d\n", h.NonFinite); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// getMaxBarWidth fits the bars into the terminal next to the fixed columns.
func getMaxBarWidth(cfg *contract.Config, reserved int) int {
	available := contract.TerminalWidth(cfg.Width) - reserved
	return min(max(available, minBarWidth), maxBarWidth)
}
