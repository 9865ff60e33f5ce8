package ui

import (
	"fmt"
	"strings"

	"github.com/Bilal-AKAG/autogitignore/internal/gitignore"
	"github.com/Bilal-AKAG/autogitignore/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	previewMaxDisplayLines = 20  // used by inline (vertical) preview only
	previewPanelMinWidth   = 30  // minimum cols for the preview panel; below this no split
	previewPanelFraction   = 0.5 // fraction of total width given to the preview panel

	// Bottom bar: status line + search prompt, spanning the full width.
	bottomBarRows = 2

	headerText = "Welcome to autogitignore"
	footerText = "space select  / search  p preview mode  alt+j/k scroll preview  ctrl+s save  enter save & quit  q quit"
)

var previewScrollStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// hasSidePreview reports whether the preview panel is rendered beside the
// list rather than inline below it.
func (m *Model) hasSidePreview() bool {
	return m.previewPanelWidth() > 0
}

// previewPanelWidth returns the width in columns for the right-hand preview
// panel. Returns 0 when the terminal is too narrow to split.
func (m *Model) previewPanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * previewPanelFraction)
	if w < previewPanelMinWidth {
		return 0
	}
	return w
}

// listColumnWidth returns the width available for the left-hand list column.
func (m *Model) listColumnWidth() int {
	return m.width - m.previewPanelWidth()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.session.Mode == state.ModeConfirm {
		return m.viewConfirm()
	}
	if m.hasSidePreview() {
		return m.viewSideBySide()
	}
	return m.viewVertical()
}

// viewVertical is the single-column layout with the preview block inline
// below the list, used when the terminal is too narrow for side-by-side.
func (m *Model) viewVertical() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: headerText, style: styles.Header})
	lines = m.appendListLines(lines, m.width)
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.previewTitle(), style: styles.PreviewTitle})
	for _, line := range m.previewBodyWindow(previewMaxDisplayLines) {
		lines = append(lines, styledLine{text: line, style: styles.PreviewBody})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-bottomBarRows, m.width)
	lines = applyWidth(lines, m.width)

	bottomLines := []styledLine{
		m.statusLine(),
		{text: m.queryPrompt(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// viewSideBySide renders the list on the left and the preview panel on the
// right, with the status line and search prompt spanning the full width
// beneath both columns.
func (m *Model) viewSideBySide() string {
	listW := m.listColumnWidth()
	prevW := m.previewPanelWidth()

	contentLines := make([]styledLine, 0, 16)
	contentLines = append(contentLines, styledLine{text: headerText, style: styles.Header})
	contentLines = m.appendListLines(contentLines, listW)
	if m.showFooter {
		contentLines = append(contentLines, styledLine{})
		contentLines = append(contentLines, styledLine{text: footerText, style: styles.Footer})
	}

	panelH := m.height - bottomBarRows
	if panelH < 1 {
		panelH = 1
	}
	if len(contentLines) > panelH {
		contentLines = contentLines[:panelH]
	}
	for len(contentLines) < panelH {
		contentLines = append(contentLines, styledLine{})
	}

	// Styling lives in styledLine.style fields, so rune-based truncation is
	// safe here.
	contentLines = applyWidth(contentLines, listW)
	leftStr := renderLines(contentLines)

	// Pad/truncate every rendered row to exactly listW visible columns so
	// JoinHorizontal keeps the preview panel flush to the right edge.
	leftRows := strings.Split(leftStr, "\n")
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > listW {
			leftRows[i] = truncate.StringWithTail(row, uint(listW-1), "…")
		} else if w < listW {
			leftRows[i] = row + strings.Repeat(" ", listW-w)
		}
	}
	leftStr = strings.Join(leftRows, "\n")

	rightStr := m.renderPreviewPanel(prevW, panelH)

	topSection := lipgloss.JoinHorizontal(lipgloss.Top, leftStr, rightStr)

	bottomLines := []styledLine{
		m.statusLine(),
		{text: m.queryPrompt(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	bottomStr := renderLines(bottomLines)

	return topSection + "\n" + bottomStr
}

// appendListLines appends the visible slice of the filtered list, or the
// loading/empty placeholder, to lines.
func (m *Model) appendListLines(lines []styledLine, width int) []styledLine {
	s := m.session
	m.syncViewport()
	if s.Loading && len(s.Filtered) == 0 {
		return append(lines, styledLine{text: m.spin.View() + " Fetching templates from gitignore.io...", raw: true})
	}
	if len(s.Filtered) == 0 {
		return append(lines, styledLine{text: "No templates found.", style: styles.Item})
	}
	start := 0
	display := s.Filtered
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(display) > maxItems {
		start = s.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(display) {
			start = len(display) - maxItems
			if start < 0 {
				start = 0
			}
			s.ViewportOffset = start
		}
		display = display[start : start+maxItems]
	}
	for i, name := range display {
		lines = append(lines, m.buildItemLine(name, start+i, width))
	}
	return lines
}

// buildItemLine constructs a single styledLine for a template row. width is
// the target column width; when > 0 the text is padded so the highlighted
// row's background spans the full container.
func (m *Model) buildItemLine(name string, idx, width int) styledLine {
	s := m.session
	indicator := " "
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	mark := " "
	if s.IsSelected(name) {
		mark = "X"
		lineStyle = styles.SelectedMark
	}
	if idx == s.Cursor {
		indicator = "▶"
		indicatorStyle = styles.HighlightIndicator
		lineStyle = styles.HighlightedItem
	}
	fullText := fmt.Sprintf("%s [%s] %s", indicator, mark, name)
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the indicator cell
	}
}

func (m *Model) previewTitle() string {
	s := m.session
	if s.PreviewMode == state.PreviewCombined {
		return fmt.Sprintf("Preview: combined (%d selected)", len(s.Selected))
	}
	if name := s.HighlightedName(); name != "" {
		return "Preview: " + name
	}
	return "Preview"
}

func (m *Model) previewLines() []string {
	return strings.Split(m.session.PreviewText(), "\n")
}

// previewBodyWindow returns up to limit preview lines starting at the
// scroll offset, clamping the offset into range first.
func (m *Model) previewBodyWindow(limit int) []string {
	lines := m.previewLines()
	if limit <= 0 {
		return lines
	}
	maxOffset := len(lines) - limit
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.session.PreviewScroll > maxOffset {
		m.session.PreviewScroll = maxOffset
	}
	if m.session.PreviewScroll < 0 {
		m.session.PreviewScroll = 0
	}
	start := m.session.PreviewScroll
	end := start + limit
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}

// previewViewportHeight is the number of preview lines visible at once in
// the current layout.
func (m *Model) previewViewportHeight() int {
	if m.hasSidePreview() {
		h := m.height - bottomBarRows - 2
		if h < 1 {
			h = 1
		}
		return h
	}
	return previewMaxDisplayLines
}

// previewScrollMax is the largest valid scroll offset for the current
// preview content.
func (m *Model) previewScrollMax() int {
	max := len(m.previewLines()) - m.previewViewportHeight()
	if max < 0 {
		max = 0
	}
	return max
}

// renderPreviewPanel builds the bordered preview box as a string with
// exactly height rows and totalWidth columns.
func (m *Model) renderPreviewPanel(totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	lines := m.previewLines()
	maxOffset := len(lines) - innerH
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.session.PreviewScroll > maxOffset {
		m.session.PreviewScroll = maxOffset
	}
	if m.session.PreviewScroll < 0 {
		m.session.PreviewScroll = 0
	}
	end := m.session.PreviewScroll + innerH
	if end > len(lines) {
		end = len(lines)
	}
	contentLines := lines[m.session.PreviewScroll:end]
	lastVisible := m.session.PreviewScroll + len(contentLines)
	scrollInfo := fmt.Sprintf(" %d/%d ", lastVisible, len(lines))

	// Build top border: ╭─ title ──────────── scrollInfo ─╮
	titleSeg := " " + m.previewTitle() + " "
	scrollSeg := scrollInfo
	dashes := totalWidth - 4 - len([]rune(titleSeg)) - len([]rune(scrollSeg))
	if dashes < 0 {
		// Too narrow for scroll info; drop it.
		scrollSeg = ""
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		// Still too narrow; truncate title.
		titleSeg = " … "
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := styles.PreviewBorder.Render(tlc+hz) +
		styles.PreviewTitle.Render(titleSeg) +
		styles.PreviewBorder.Render(strings.Repeat(hz, dashes)) +
		previewScrollStyle.Render(scrollSeg) +
		styles.PreviewBorder.Render(hz+trc)

	bottomLine := styles.PreviewBorder.Render(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(contentLines) {
			content = contentLines[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content = content + strings.Repeat(" ", innerW-w)
		}
		styledContent := content
		if styles.PreviewBody != nil {
			styledContent = styles.PreviewBody.Render(content)
		}
		rows = append(rows, styles.PreviewBorder.Render(vt)+styledContent+styles.PreviewBorder.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// viewConfirm renders the centered append-or-overwrite modal.
func (m *Model) viewConfirm() string {
	s := m.session
	appendStyle := styles.ModalChoice
	overwriteStyle := styles.ModalChoice
	if s.PendingWrite == gitignore.ModeAppend {
		appendStyle = styles.ModalChoiceActive
	} else {
		overwriteStyle = styles.ModalChoiceActive
	}
	choices := appendStyle.Render(" [A] Append ") + "    " + overwriteStyle.Render(" [O] Overwrite ")
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.ModalTitle.Render(".gitignore already exists!"),
		"",
		"An existing .gitignore file was found.",
		"Choose an action:",
		"",
		choices,
		"",
		styles.SearchPlaceholder.Render("left/right or a/o to choose, enter to confirm, esc to cancel"),
	)
	box := styles.Modal.Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// statusLine is the first bottom-bar row: error, then notification, then
// the selected-templates summary.
func (m *Model) statusLine() styledLine {
	s := m.session
	if s.Err != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", s.Err), style: styles.Error}
	}
	if s.Notification != "" {
		return styledLine{text: s.Notification, style: styles.Notification}
	}
	label := fmt.Sprintf("Selected (%d): ", len(s.Selected))
	names := "None"
	namesStyle := styles.SearchPlaceholder
	if s.HasSelection() {
		names = strings.Join(s.SelectedNames(), ", ")
		namesStyle = styles.SelectedMark
	}
	if styles.Footer != nil && namesStyle != nil {
		return styledLine{text: styles.Footer.Render(label) + namesStyle.Render(names), raw: true}
	}
	return styledLine{text: label + names}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// handleMouseMsg scrolls the preview with the mouse wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if m.session.Mode == state.ModeConfirm {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.scrollPreviewBy(-3)
	case tea.MouseButtonWheelDown:
		m.scrollPreviewBy(3)
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := bottomBarRows
	used++ // header
	if m.showFooter {
		used += 2
	}
	// In side-by-side mode the full height is available for the left column;
	// no preview rows need to be reserved.
	if !m.hasSidePreview() {
		used += 2 // blank separator + title line
		used += len(m.previewBodyWindow(previewMaxDisplayLines))
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
