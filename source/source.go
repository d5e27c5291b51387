// Package source defines the public records served by the API and the interface every provider implements.
package source

import "context"

// Source defines the capabilities of a manga provider.
type Source interface {
	// Name returns the human readable provider name.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Popular lists manga ordered by popularity.
	Popular(ctx context.Context, page int) (*MangaList, error)

	// Latest lists recently updated manga.
	Latest(ctx context.Context, page int) (*MangaList, error)

	// Search lists manga matching a free text query.
	Search(ctx context.Context, query string, page int) (*MangaList, error)

	// MangaOf retrieves the detail record of a single manga.
	MangaOf(ctx context.Context, mangaID string) (*MangaDetail, error)

	// ChaptersOf retrieves every chapter of a manga. An empty slice is not an error.
	ChaptersOf(ctx context.Context, mangaID string) ([]Chapter, error)

	// PagesOf retrieves the ordered page images of a chapter.
	PagesOf(ctx context.Context, chapterID string) ([]Page, error)

	// Image downloads an image through the provider with provider-friendly headers.
	Image(ctx context.Context, url string) (*Image, error)
}
