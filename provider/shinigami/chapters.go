package shinigami

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shinigami-rest/shinigami/source"
)

// chapterMatcher extracts the chapter items from one known payload layout.
type chapterMatcher func(payload any) ([]any, bool)

// chapterMatchers are tried in order; the first match wins.
var chapterMatchers = []chapterMatcher{
	bareChapters,
	chapterListField,
	dataChapters,
}

func bareChapters(payload any) ([]any, bool) {
	return asArray(payload)
}

func chapterListField(payload any) ([]any, bool) {
	return asArray(get(payload, "chapter_list").OrEmpty())
}

func dataChapters(payload any) ([]any, bool) {
	return asArray(get(payload, "data").OrEmpty())
}

// dateLayouts are the timestamp formats seen in chapter payloads.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// normalizeChapters converts a /v1/chapter/{id}/list payload. Unknown layouts yield no chapters.
func normalizeChapters(payload any, baseURL, mangaID string) []source.Chapter {
	var items []any
	for _, match := range chapterMatchers {
		if found, ok := match(payload); ok {
			items = found
			break
		}
	}

	return lo.Map(items, func(item any, _ int) source.Chapter {
		id := firstString(item, "", "chapter_id", "id")
		return source.Chapter{
			Name:       chapterName(item),
			DateUpload: uploadDate(firstTruthy(item, "release_date", "date", "created_at").OrEmpty()),
			URL:        id,
			ChapterURL: seriesURL(baseURL, mangaID) + "/" + id,
		}
	})
}

func chapterName(item any) string {
	number := chapterNumber(firstString(item, "", "chapter_number", "name", "number"))
	title := firstString(item, "", "chapter_title", "title")

	name := fmt.Sprintf("Chapter %s", number)
	if title != "" {
		name = fmt.Sprintf("Chapter %s - %s", number, title)
	}
	return strings.TrimSpace(name)
}

// chapterNumber removes one trailing ".0": "12.0" becomes "12" and "12.0.0" becomes "12.0".
func chapterNumber(raw string) string {
	return strings.TrimSuffix(raw, ".0")
}

// uploadDate returns milliseconds since the epoch, or 0 when the value cannot be understood.
func uploadDate(v any) int64 {
	switch value := v.(type) {
	case float64:
		return int64(value)
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t.UnixMilli()
			}
		}
	}
	return 0
}
