package webapp

import (
	"net/http"
	"strconv"
)

const defaultTopN = 10

func topN(r *http.Request) int {
	if raw := r.URL.Query().Get("n"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return defaultTopN
}

func (webapp *WebApp) report() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := webapp.reporter.Overview()
		if err != nil {
			webapp.renderError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, overview)
	}
}

func (webapp *WebApp) extensions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exts, err := webapp.reporter.ExtensionsByCount()
		if err != nil {
			webapp.renderError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, exts)
	}
}

func (webapp *WebApp) topFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := webapp.reporter.TopFiles(topN(r))
		if err != nil {
			webapp.renderError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, files)
	}
}

func (webapp *WebApp) topImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := webapp.reporter.TopImages(topN(r))
		if err != nil {
			webapp.renderError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, images)
	}
}

func (webapp *WebApp) topDocuments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documents, err := webapp.reporter.TopDocuments(topN(r))
		if err != nil {
			webapp.renderError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, documents)
	}
}
