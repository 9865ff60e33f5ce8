package events

import "github.com/Bilal-AKAG/autogitignore/internal/logging"

type WriterTracer struct{}

var Writer = WriterTracer{}

func (WriterTracer) ConfirmOpened(path string) {
	logging.Trace("writer.confirm-opened", map[string]interface{}{"path": path})
}

func (WriterTracer) ConfirmCancelled() {
	logging.Trace("writer.confirm-cancelled", nil)
}

func (WriterTracer) Saved(path, mode string, bytes int) {
	logging.Trace("writer.saved", map[string]interface{}{"path": path, "mode": mode, "bytes": bytes})
}

func (WriterTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("writer.error", map[string]interface{}{"error": err.Error()})
}
