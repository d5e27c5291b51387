package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shinigami-rest/shinigami/constant"
	"github.com/shinigami-rest/shinigami/source"
	"github.com/shinigami-rest/shinigami/util"
)

const defaultImageType = "image/jpeg"

// handlers holds the per-route functions. It keeps no per-request state.
type handlers struct {
	source      source.Source
	passthrough bool
	now         func() time.Time
}

func (h *handlers) respondError(w http.ResponseWriter, err error) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusBadRequest, failure(validation.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, failure(err.Error()))
}

func respond[T any](h *handlers, w http.ResponseWriter, data T, err error) {
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, succeed(data))
}

type endpoints struct {
	Health   string `json:"health"`
	Popular  string `json:"popular"`
	Latest   string `json:"latest"`
	Search   string `json:"search"`
	Details  string `json:"details"`
	Chapters string `json:"chapters"`
	Pages    string `json:"pages"`
	Image    string `json:"image"`
}

type index struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	Version       string    `json:"version"`
	Documentation string    `json:"documentation"`
	Endpoints     endpoints `json:"endpoints"`
}

func (h *handlers) index(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, index{
		Success:       true,
		Message:       "Welcome to " + h.source.Name() + " REST API",
		Version:       constant.Version,
		Documentation: constant.Documentation,
		Endpoints: endpoints{
			Health:   "/api/health",
			Popular:  "/api/manga/popular?page=1",
			Latest:   "/api/manga/latest?page=1",
			Search:   "/api/manga/search?q=query&page=1",
			Details:  "/api/manga/:mangaId",
			Chapters: "/api/manga/:mangaId/chapters",
			Pages:    "/api/manga/chapter/:chapterId/pages",
			Image:    "/api/manga/image?url=imageUrl",
		},
	})
}

type health struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, health{
		Success:   true,
		Message:   h.source.Name() + " API is running",
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z"),
	})
}

func (h *handlers) notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, failure("Route not found"))
}

func (h *handlers) popular(w http.ResponseWriter, r *http.Request) {
	list, err := h.source.Popular(r.Context(), pageParam(r))
	respond(h, w, list, err)
}

func (h *handlers) latest(w http.ResponseWriter, r *http.Request) {
	list, err := h.source.Latest(r.Context(), pageParam(r))
	respond(h, w, list, err)
}

func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	query, err := required(util.Sanitize(r.URL.Query().Get("q")), fieldQuery)
	if err != nil {
		h.respondError(w, err)
		return
	}

	list, err := h.source.Search(r.Context(), query, pageParam(r))
	respond(h, w, list, err)
}

func (h *handlers) manga(w http.ResponseWriter, r *http.Request) {
	mangaID, err := required(r.PathValue("mangaId"), fieldMangaID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	detail, err := h.source.MangaOf(r.Context(), mangaID)
	respond(h, w, detail, err)
}

func (h *handlers) chapters(w http.ResponseWriter, r *http.Request) {
	mangaID, err := required(r.PathValue("mangaId"), fieldMangaID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	chapters, err := h.source.ChaptersOf(r.Context(), mangaID)
	if chapters == nil {
		chapters = []source.Chapter{}
	}
	respond(h, w, chapters, err)
}

func (h *handlers) pages(w http.ResponseWriter, r *http.Request) {
	chapterID, err := required(r.PathValue("chapterId"), fieldChapterID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	pages, err := h.source.PagesOf(r.Context(), chapterID)
	respond(h, w, pages, err)
}

func (h *handlers) image(w http.ResponseWriter, r *http.Request) {
	rawURL, err := required(r.URL.Query().Get("url"), fieldImageURL)
	if err != nil {
		h.respondError(w, err)
		return
	}

	if parsed, err := url.Parse(rawURL); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		writeJSON(w, http.StatusBadRequest, failure("Image URL must be an absolute http(s) URL"))
		return
	}

	image, err := h.source.Image(r.Context(), rawURL)
	if err != nil {
		h.respondError(w, err)
		return
	}

	contentType := defaultImageType
	if h.passthrough && image.ContentType != "" {
		contentType = image.ContentType
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(image.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image.Body)
}
