package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shinigami-rest/shinigami/util"
)

// ValidationError reports a missing required input.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// Field names as they appear in validation messages.
const (
	fieldQuery     = `Query parameter "q"`
	fieldMangaID   = "Manga ID"
	fieldChapterID = "Chapter ID"
	fieldImageURL  = "Image URL"
)

// pageParam reads the page query parameter. Absent, non-numeric and values below 1 become 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("page")))
	if err != nil {
		return 1
	}
	return util.Max(page, 1)
}

// required returns the trimmed value, or a ValidationError when it is blank.
func required(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Field: field}
	}
	return value, nil
}
