package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func router(webapp *WebApp) http.Handler {
	r := chi.NewRouter()

	r.Get("/api/report", webapp.report())
	r.Get("/api/extensions", webapp.extensions())
	r.Get("/api/top/files", webapp.topFiles())
	r.Get("/api/top/images", webapp.topImages())
	r.Get("/api/top/documents", webapp.topDocuments())

	r.NotFound(webapp.notFoundHandler())

	return r
}
