package api

import "net/http"

func (h *handlers) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /api/health", h.health)

	mux.HandleFunc("GET /api/manga/popular", h.popular)
	mux.HandleFunc("GET /api/manga/latest", h.latest)
	mux.HandleFunc("GET /api/manga/search", h.search)
	mux.HandleFunc("GET /api/manga/image", h.image)
	mux.HandleFunc("GET /api/manga/chapter/{chapterId}/pages", h.pages)
	mux.HandleFunc("GET /api/manga/{mangaId}/chapters", h.chapters)
	mux.HandleFunc("GET /api/manga/{mangaId}", h.manga)

	mux.HandleFunc("/", h.notFound)

	return mux
}
