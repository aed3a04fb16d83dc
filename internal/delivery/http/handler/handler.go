package handler

import (
	"net/http"
	"strconv"
)

const (
	defaultPage = 0
	defaultSize = 20
)

// parsePagination reads page/size query parameters, falling back to the
// defaults when absent. Malformed values surface as ok=false.
func parsePagination(r *http.Request) (page, size int, ok bool) {
	page, size = defaultPage, defaultSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		page = parsed
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		size = parsed
	}
	return page, size, true
}
