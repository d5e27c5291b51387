package shinigami

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shinigami-rest/shinigami/source"
)

const unknown = "Unknown"

// normalizeList converts a /v1/manga/list payload.
func normalizeList(payload any, baseURL string) (*source.MangaList, error) {
	items, ok := asArray(get(payload, "data").OrEmpty())
	if !ok {
		return nil, ErrInvalidResponse
	}

	mangas := lo.Map(items, func(item any, _ int) source.Manga {
		id := firstString(item, "", "manga_id")
		return source.Manga{
			Title:     firstString(item, unknown, "title"),
			Thumbnail: firstString(item, "", "cover_image_url", "cover_portrait_url"),
			URL:       id,
			MangaURL:  seriesURL(baseURL, id),
		}
	})

	return &source.MangaList{
		Mangas:      mangas,
		HasNextPage: hasNextPage(get(payload, "meta").OrEmpty()),
	}, nil
}

// hasNextPage compares the current page against the total; a missing counter means no next page.
// current_page is only consulted when page is absent, so a page of 0 still counts.
func hasNextPage(meta any) bool {
	counter := get(meta, "page")
	if counter.IsAbsent() {
		counter = get(meta, "current_page")
	}

	page, ok := numberOf(counter.OrEmpty()).Get()
	if !ok {
		return false
	}
	total, ok := numberOf(get(meta, "total_page").OrEmpty()).Get()
	if !ok {
		return false
	}
	return page < total
}

// normalizeDetail converts a /v1/manga/detail payload.
func normalizeDetail(payload any) (*source.MangaDetail, error) {
	data, ok := asObject(get(payload, "data").OrEmpty())
	if !ok {
		return nil, ErrInvalidResponse
	}

	taxonomy := get(data, "taxonomy").OrEmpty()
	genre := lo.Filter([]string{
		taxonomyNames(taxonomy, "Genre"),
		taxonomyNames(taxonomy, "Format"),
	}, func(s string, _ int) bool { return s != "" })

	status := source.StatusUnknown
	if code, ok := get(data, "status").Get(); ok {
		if f, isNumber := code.(float64); isNumber {
			status = source.StatusFromCode(f)
		}
	}

	return &source.MangaDetail{
		Title:       firstString(data, unknown, "title"),
		Author:      lo.CoalesceOrEmpty(taxonomyNames(taxonomy, "Author"), unknown),
		Artist:      lo.CoalesceOrEmpty(taxonomyNames(taxonomy, "Artist"), unknown),
		Status:      status,
		Description: firstString(data, "", "description"),
		Genre:       strings.Join(genre, ", "),
		Thumbnail:   firstString(data, "", "cover_image_url", "cover_portrait_url"),
	}, nil
}

// taxonomyNames joins the names of one taxonomy category.
func taxonomyNames(taxonomy any, category string) string {
	items, ok := asArray(get(taxonomy, category).OrEmpty())
	if !ok {
		return ""
	}

	names := lo.FilterMap(items, func(item any, _ int) (string, bool) {
		name := firstString(item, "", "name")
		return name, name != ""
	})
	return strings.Join(names, ", ")
}

func seriesURL(baseURL, mangaID string) string {
	return baseURL + "/series/" + mangaID
}
