package terminal

import (
	"fmt"
	"strings"
	"time"
)

// RuleWidth is the width of section rules printed around agent output.
const RuleWidth = 60

// FormatDuration formats a duration as "4.2s" below a minute and "2m 05s" above.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	d = d.Round(time.Second)
	mins := int(d / time.Minute)
	secs := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%dm %02ds", mins, secs)
}

// Rule returns a dim horizontal rule of width characters with label embedded
// near the start. An empty label yields a plain rule.
func Rule(label string, width int) string {
	if label == "" {
		return Color(Dim) + strings.Repeat("─", width) + Color(Reset)
	}
	head := "── " + label + " "
	fill := width - len([]rune(head))
	if fill < 0 {
		fill = 0
	}
	return Color(Dim) + head + strings.Repeat("─", fill) + Color(Reset)
}

// Rule prints a labeled section rule without the [gpr] tag.
func (l *Logger) Rule(label string) {
	fmt.Fprintln(l.out, Rule(label, RuleWidth))
}
