package api

import (
	"context"

	"github.com/shinigami-rest/shinigami/source"
)

// fakeSource records its last call and returns canned values.
type fakeSource struct {
	page     int
	query    string
	id       string
	list     *source.MangaList
	detail   *source.MangaDetail
	chapters []source.Chapter
	pages    []source.Page
	image    *source.Image
	err      error
	panics   bool
}

func (f *fakeSource) Name() string { return "Shinigami" }
func (f *fakeSource) ID() string   { return "fake" }

func (f *fakeSource) Popular(_ context.Context, page int) (*source.MangaList, error) {
	f.page = page
	return f.list, f.err
}

func (f *fakeSource) Latest(_ context.Context, page int) (*source.MangaList, error) {
	f.page = page
	return f.list, f.err
}

func (f *fakeSource) Search(_ context.Context, query string, page int) (*source.MangaList, error) {
	f.query, f.page = query, page
	return f.list, f.err
}

func (f *fakeSource) MangaOf(_ context.Context, mangaID string) (*source.MangaDetail, error) {
	if f.panics {
		panic("boom")
	}
	f.id = mangaID
	return f.detail, f.err
}

func (f *fakeSource) ChaptersOf(_ context.Context, mangaID string) ([]source.Chapter, error) {
	f.id = mangaID
	return f.chapters, f.err
}

func (f *fakeSource) PagesOf(_ context.Context, chapterID string) ([]source.Page, error) {
	f.id = chapterID
	return f.pages, f.err
}

func (f *fakeSource) Image(_ context.Context, url string) (*source.Image, error) {
	f.id = url
	return f.image, f.err
}
