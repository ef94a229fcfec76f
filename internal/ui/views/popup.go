package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"jobs4u/internal/domain"
)

const dialogDescriptionLines = 12

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderJobDialog renders the body of the job detail dialog
func (pr *PopupRenderer) RenderJobDialog(job domain.Job, termWidth int) string {
	width := termWidth - 16
	if width > 72 {
		width = 72
	}
	if width < 24 {
		width = 24
	}

	wrap := lipgloss.NewStyle().Width(width)
	desc := wrap.Render(strings.TrimSpace(job.Description))
	descLines := strings.Split(desc, "\n")
	if len(descLines) > dialogDescriptionLines {
		descLines = append(descLines[:dialogDescriptionLines], pr.styles.Dim.Render("… press v to read everything"))
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		pr.styles.ButtonActive.Render("a Apply"),
		"  ",
		pr.styles.Button.Render("v Full description"),
		"  ",
		pr.styles.Button.Render("esc Close"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		pr.styles.CardTitle.Render(wrap.Render(job.Title)),
		pr.styles.Company.Render(job.Company),
		pr.styles.Location.Render(job.Location),
		"",
		strings.Join(descLines, "\n"),
		"",
		pr.styles.Dim.Render(runewidth.Truncate(job.URL, width, "…")),
		"",
		buttons,
	)
}

// RenderPopupOverlay draws popupContent centred over a greyed-out copy of
// mainContent. Background text left and right of the popup stays visible.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	if width <= 0 {
		width = lipgloss.Width(mainContent)
	}
	if height <= 0 {
		height = lipgloss.Height(mainContent)
	}

	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(ansiRE.ReplaceAllString(mainContent, ""), "\n")
	for len(base) < y+modalH || len(base) < height {
		base = append(base, "")
	}

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, len(base))
	for i, line := range base {
		row := i - y
		if row < 0 || row >= modalH {
			out[i] = grey.Render(line)
			continue
		}

		left := runewidth.FillRight(runewidth.Truncate(line, x, ""), x)
		popupLine := popupLines[row]
		if pad := modalW - lipgloss.Width(popupLine); pad > 0 {
			popupLine += strings.Repeat(" ", pad)
		}
		right := ""
		if runewidth.StringWidth(line) > x+modalW {
			right = runewidth.TruncateLeft(line, x+modalW, "")
		}
		out[i] = grey.Render(left) + popupLine + grey.Render(right)
	}

	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes colour and style sequences
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
