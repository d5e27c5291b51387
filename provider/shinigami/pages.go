package shinigami

import (
	"github.com/samber/lo"
	"github.com/shinigami-rest/shinigami/source"
)

// pageMatcher recognises one payload layout of /v1/chapter/detail/{id}.
// Once a matcher reports ok the remaining ones are not tried, even if it found no pages.
type pageMatcher func(payload any, cdnURL string) (pages []source.Page, ok bool)

// pageMatchers are tried in order; the first match wins.
var pageMatchers = []pageMatcher{
	nestedChapterPages,
	pageListPages,
	topLevelPages,
	barePages,
}

// nestedChapterPages handles {data: {base_url, base_url_low, chapter: {path, data: [...]}}}.
func nestedChapterPages(payload any, _ string) ([]source.Page, bool) {
	data := get(payload, "data").OrEmpty()
	chapter, ok := firstTruthy(data, "chapter").Get()
	if !ok {
		return nil, false
	}

	base := firstString(data, "", "base_url", "base_url_low")
	path := firstString(chapter, "", "path")
	return joinPages(base, path, get(chapter, "data").OrEmpty()), true
}

// pageListPages handles {page_list: {chapter_page: {path, pages: [...]}}} served from the CDN root.
func pageListPages(payload any, cdnURL string) ([]source.Page, bool) {
	list, ok := firstTruthy(get(payload, "page_list").OrEmpty(), "chapter_page").Get()
	if !ok {
		return nil, false
	}

	path := firstString(list, "", "path")
	return joinPages(cdnURL, path, get(list, "pages").OrEmpty()), true
}

// topLevelPages handles {base_url, path, pages: [...]}.
func topLevelPages(payload any, cdnURL string) ([]source.Page, bool) {
	files, ok := firstTruthy(payload, "pages").Get()
	if !ok {
		return nil, false
	}

	base := firstString(payload, cdnURL, "base_url")
	path := firstString(payload, "", "path")
	return joinPages(base, path, files), true
}

// barePages handles a bare array of page objects or URLs.
// It matches any array, but yields nothing unless every element carries a URL.
func barePages(payload any, _ string) ([]source.Page, bool) {
	items, ok := asArray(payload)
	if !ok {
		return nil, false
	}

	pages := lo.Map(items, func(item any, index int) source.Page {
		url := stringOf(item)
		if _, isObject := asObject(item); isObject {
			url = firstString(item, "", "image_url", "url")
		}
		return source.Page{Index: index, ImageURL: url}
	})

	// An element without a URL invalidates the whole list.
	if lo.SomeBy(pages, func(p source.Page) bool { return p.ImageURL == "" }) {
		return nil, true
	}

	return pages, true
}

// joinPages concatenates base, path and each file name literally.
func joinPages(base, path string, files any) []source.Page {
	names, ok := asArray(files)
	if !ok {
		return nil
	}

	return lo.Map(names, func(name any, index int) source.Page {
		return source.Page{Index: index, ImageURL: base + path + stringOf(name)}
	})
}

// normalizePages converts a chapter detail payload into its page list.
func normalizePages(payload any, cdnURL string) ([]source.Page, error) {
	for _, match := range pageMatchers {
		pages, ok := match(payload, cdnURL)
		if !ok {
			continue
		}
		if len(pages) == 0 {
			return nil, ErrPagesNotFound
		}
		return pages, nil
	}

	return nil, ErrPagesNotFound
}
