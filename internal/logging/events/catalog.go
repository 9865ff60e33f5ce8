package events

import "github.com/Bilal-AKAG/autogitignore/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) CacheHit(path string, templates int) {
	logging.Trace("catalog.cache-hit", map[string]interface{}{"path": path, "templates": templates})
}

func (CatalogTracer) CacheMiss(path string) {
	logging.Trace("catalog.cache-miss", map[string]interface{}{"path": path})
}

func (CatalogTracer) Fetched(templates int) {
	logging.Trace("catalog.fetched", map[string]interface{}{"templates": templates})
}

func (CatalogTracer) FetchError(err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.fetch-error", map[string]interface{}{"error": err.Error()})
}

func (CatalogTracer) PersistError(err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.persist-error", map[string]interface{}{"error": err.Error()})
}

func (CatalogTracer) Applied(templates int) {
	logging.Trace("catalog.applied", map[string]interface{}{"templates": templates})
}
