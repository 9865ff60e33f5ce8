package events

import "github.com/Bilal-AKAG/autogitignore/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Cursor(index int, name string) {
	logging.Trace("ui.cursor", map[string]interface{}{"index": index, "name": name})
}

func (UITracer) Mode(mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"mode": mode})
}

func (UITracer) ToggleSelection(name string, selected bool, total int) {
	logging.Trace("ui.toggle", map[string]interface{}{
		"name":     name,
		"selected": selected,
		"total":    total,
	})
}

func (UITracer) PreviewMode(mode string) {
	logging.Trace("ui.preview-mode", map[string]interface{}{"mode": mode})
}

func (UITracer) PreviewScroll(offset int) {
	logging.Trace("ui.preview-scroll", map[string]interface{}{"offset": offset})
}

func (FilterTracer) Append(query string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Backspace(query string, matches int) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) WordBackspace(query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}
