package cli

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	ellipsis       = "…"

	bannerPadding   = 2
	truncateReserve = 1
	halfDivisor     = 2
)

// DefaultWidth is the banner width used by the simulator.
const DefaultWidth = 60

// Banner frames the lines in a box of the given width, centering each line
// and truncating lines that do not fit.
func Banner(width int, lines ...string) string {
	if width <= bannerPadding || len(lines) == 0 {
		return ""
	}

	inner := width - bannerPadding
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, line := range lines {
		for _, l := range strings.Split(strings.ReplaceAll(line, "\r\n", "\n"), "\n") {
			parts = append(parts, fmt.Sprintf("%s%s%s", boxSide, padCenter(l, inner), boxSide))
		}
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n")
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

func truncateGraphic(s string, n int) (string, int) {
	var sb strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		sb.WriteRune(r)
	}

	return sb.String(), count
}

func padCenter(text string, width int) string {
	length := countGraphic(text)
	if length == width {
		return text
	}

	str := text
	if length > width {
		str, length = truncateGraphic(str, width-truncateReserve)
		str += ellipsis
		length++
	}

	diff := width - length
	leftPad := diff / halfDivisor

	return strings.Repeat(" ", leftPad) + str + strings.Repeat(" ", diff-leftPad)
}
