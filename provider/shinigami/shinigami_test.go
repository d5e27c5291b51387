package shinigami

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/shinigami-rest/shinigami/upstream"
	. "github.com/smartystreets/goconvey/convey"
)

type call struct {
	path  string
	query url.Values
}

type fakeFetcher struct {
	calls   []call
	payload any
	blob    *upstream.Blob
	err     error
}

func (f *fakeFetcher) FetchJSON(_ context.Context, path string, query url.Values) (any, error) {
	f.calls = append(f.calls, call{path: path, query: query})
	return f.payload, f.err
}

func (f *fakeFetcher) FetchBinary(_ context.Context, rawURL string) (*upstream.Blob, error) {
	f.calls = append(f.calls, call{path: rawURL})
	return f.blob, f.err
}

func TestShinigamiRequests(t *testing.T) {
	ctx := context.Background()

	Convey("Given a Shinigami source", t, func() {
		fetcher := &fakeFetcher{payload: payload(`{"data": []}`)}
		s := New(fetcher, Options{BaseURL: base + "/", CDNURL: cdn})

		Convey("Popular asks for the popularity order", func() {
			_, err := s.Popular(ctx, 2)
			So(err, ShouldBeNil)
			So(fetcher.calls[0].path, ShouldEqual, "/v1/manga/list")
			So(fetcher.calls[0].query.Get("page"), ShouldEqual, "2")
			So(fetcher.calls[0].query.Get("page_size"), ShouldEqual, "30")
			So(fetcher.calls[0].query.Get("sort"), ShouldEqual, "popularity")
		})

		Convey("Latest asks for the latest order", func() {
			_, err := s.Latest(ctx, 1)
			So(err, ShouldBeNil)
			So(fetcher.calls[0].query.Get("sort"), ShouldEqual, "latest")
		})

		Convey("Search sends the query without an order", func() {
			_, err := s.Search(ctx, "solo", 1)
			So(err, ShouldBeNil)
			So(fetcher.calls[0].query.Get("q"), ShouldEqual, "solo")
			So(fetcher.calls[0].query.Has("sort"), ShouldBeFalse)
		})

		Convey("Chapters request every chapter at once", func() {
			chapters, err := s.ChaptersOf(ctx, "m1")
			So(err, ShouldBeNil)
			So(chapters, ShouldBeEmpty)
			So(fetcher.calls[0].path, ShouldEqual, "/v1/chapter/m1/list")
			So(fetcher.calls[0].query.Get("page_size"), ShouldEqual, "3000")
		})

		Convey("Detail and pages hit their endpoints", func() {
			fetcher.payload = payload(`{"data": {"title": "x", "chapter": {"data": ["1.jpg"]}}}`)

			_, err := s.MangaOf(ctx, "m1")
			So(err, ShouldBeNil)
			So(fetcher.calls[0].path, ShouldEqual, "/v1/manga/detail/m1")

			pages, err := s.PagesOf(ctx, "c1")
			So(err, ShouldBeNil)
			So(pages, ShouldHaveLength, 1)
			So(fetcher.calls[1].path, ShouldEqual, "/v1/chapter/detail/c1")
		})

		Convey("Browsable URLs use the base URL without a trailing slash", func() {
			fetcher.payload = payload(`{"data": [{"manga_id": "m9"}]}`)
			list, err := s.Popular(ctx, 1)
			So(err, ShouldBeNil)
			So(list.Mangas[0].MangaURL, ShouldEqual, base+"/series/m9")
		})
	})
}

func TestShinigamiErrors(t *testing.T) {
	ctx := context.Background()

	Convey("Given an upstream failure", t, func() {
		fetcher := &fakeFetcher{err: &upstream.Error{Status: 502, Message: "Bad Gateway"}}
		s := New(fetcher, Options{})

		Convey("The message names the operation", func() {
			_, err := s.Popular(ctx, 1)
			So(err.Error(), ShouldEqual, "Failed to get popular manga: 502 - Bad Gateway")

			_, err = s.Latest(ctx, 1)
			So(err.Error(), ShouldEqual, "Failed to get latest updates: 502 - Bad Gateway")

			_, err = s.ChaptersOf(ctx, "m")
			So(err.Error(), ShouldEqual, "Failed to get chapter list: 502 - Bad Gateway")
		})

		Convey("The upstream error stays inspectable", func() {
			_, err := s.MangaOf(ctx, "m")
			var upstreamErr *upstream.Error
			So(errors.As(err, &upstreamErr), ShouldBeTrue)
			So(upstreamErr.Status, ShouldEqual, 502)
		})
	})

	Convey("Given a payload without data", t, func() {
		s := New(&fakeFetcher{payload: payload(`{}`)}, Options{})

		_, err := s.Search(ctx, "x", 1)
		So(errors.Is(err, ErrInvalidResponse), ShouldBeTrue)
		So(err.Error(), ShouldEqual, "Failed to search manga: invalid response from API")
	})

	Convey("Given a chapter without pages", t, func() {
		s := New(&fakeFetcher{payload: payload(`{}`)}, Options{})

		_, err := s.PagesOf(ctx, "c")
		So(errors.Is(err, ErrPagesNotFound), ShouldBeTrue)
	})
}

func TestShinigamiImage(t *testing.T) {
	Convey("Image forwards bytes and content type", t, func() {
		fetcher := &fakeFetcher{blob: &upstream.Blob{Body: []byte{1, 2, 3}, ContentType: "image/webp"}}
		s := New(fetcher, Options{})

		image, err := s.Image(context.Background(), "https://cdn/x.webp")
		So(err, ShouldBeNil)
		So(image.Body, ShouldResemble, []byte{1, 2, 3})
		So(image.ContentType, ShouldEqual, "image/webp")
		So(fetcher.calls[0].path, ShouldEqual, "https://cdn/x.webp")
	})
}
