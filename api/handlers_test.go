package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shinigami-rest/shinigami/source"
	. "github.com/smartystreets/goconvey/convey"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func serve(server *Server, method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

func decode(recorder *httptest.ResponseRecorder) envelope {
	var e envelope
	So(json.Unmarshal(recorder.Body.Bytes(), &e), ShouldBeNil)
	return e
}

func TestListHandlers(t *testing.T) {
	Convey("Given a server", t, func() {
		fake := &fakeSource{list: &source.MangaList{
			Mangas:      []source.Manga{{Title: "Solo", URL: "m1"}},
			HasNextPage: true,
		}}
		server := New(fake, Options{})

		Convey("Popular wraps the list in a success envelope", func() {
			recorder := serve(server, http.MethodGet, "/api/manga/popular?page=3")
			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(fake.page, ShouldEqual, 3)

			e := decode(recorder)
			So(e.Success, ShouldBeTrue)
			So(e.Error, ShouldBeEmpty)

			var list source.MangaList
			So(json.Unmarshal(e.Data, &list), ShouldBeNil)
			So(list.HasNextPage, ShouldBeTrue)
			So(list.Mangas[0].URL, ShouldEqual, "m1")
		})

		Convey("Page defaults and clamps to 1", func() {
			for _, query := range []string{"", "?page=abc", "?page=0", "?page=-4"} {
				serve(server, http.MethodGet, "/api/manga/latest"+query)
				So(fake.page, ShouldEqual, 1)
			}
		})

		Convey("Search requires q", func() {
			for _, query := range []string{"", "?q=", "?q=%20%20", "?q=%3C%3E"} {
				recorder := serve(server, http.MethodGet, "/api/manga/search"+query)
				So(recorder.Code, ShouldEqual, http.StatusBadRequest)

				e := decode(recorder)
				So(e.Success, ShouldBeFalse)
				So(e.Error, ShouldEqual, `Query parameter "q" is required`)
				So(e.Data, ShouldBeNil)
			}
		})

		Convey("Search passes the sanitized query and page", func() {
			recorder := serve(server, http.MethodGet, "/api/manga/search?q=%20%3Cb%3Esolo%20&page=2")
			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(fake.query, ShouldEqual, "bsolo")
			So(fake.page, ShouldEqual, 2)
		})

		Convey("Source failures become 500 envelopes", func() {
			fake.err = errors.New("Failed to get popular manga: invalid response from API")
			recorder := serve(server, http.MethodGet, "/api/manga/popular")
			So(recorder.Code, ShouldEqual, http.StatusInternalServerError)

			e := decode(recorder)
			So(e.Success, ShouldBeFalse)
			So(e.Error, ShouldContainSubstring, "invalid response")
		})
	})
}

func TestMangaHandlers(t *testing.T) {
	Convey("Given a server", t, func() {
		fake := &fakeSource{
			detail: &source.MangaDetail{Title: "Solo", Status: source.StatusOngoing},
			pages:  []source.Page{{Index: 0, ImageURL: "http://cdn/1.jpg"}},
		}
		server := New(fake, Options{})

		Convey("Detail routes the manga id", func() {
			recorder := serve(server, http.MethodGet, "/api/manga/abc-123")
			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(fake.id, ShouldEqual, "abc-123")
			So(recorder.Body.String(), ShouldContainSubstring, `"status":"Ongoing"`)
		})

		Convey("A blank manga id is rejected", func() {
			recorder := serve(server, http.MethodGet, "/api/manga/%20")
			So(recorder.Code, ShouldEqual, http.StatusBadRequest)
			So(decode(recorder).Error, ShouldEqual, "Manga ID is required")
		})

		Convey("Chapters are always a JSON array", func() {
			recorder := serve(server, http.MethodGet, "/api/manga/abc/chapters")
			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(fake.id, ShouldEqual, "abc")
			So(string(decode(recorder).Data), ShouldEqual, "[]")
		})

		Convey("Pages route the chapter id", func() {
			recorder := serve(server, http.MethodGet, "/api/manga/chapter/ch-9/pages")
			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(fake.id, ShouldEqual, "ch-9")
			So(recorder.Body.String(), ShouldContainSubstring, `"imageUrl":"http://cdn/1.jpg"`)
		})

		Convey("A blank chapter id is rejected", func() {
			recorder := serve(server, http.MethodGet, "/api/manga/chapter/%20/pages")
			So(recorder.Code, ShouldEqual, http.StatusBadRequest)
			So(decode(recorder).Error, ShouldEqual, "Chapter ID is required")
		})
	})
}

func TestImageHandler(t *testing.T) {
	Convey("Given an image", t, func() {
		body := []byte{0x89, 'P', 'N', 'G'}
		fake := &fakeSource{image: &source.Image{Body: body, ContentType: "image/png"}}
		target := "/api/manga/image?url=" + url.QueryEscape("https://cdn.example.test/a.png")

		Convey("A missing url is rejected", func() {
			recorder := serve(New(fake, Options{}), http.MethodGet, "/api/manga/image")
			So(recorder.Code, ShouldEqual, http.StatusBadRequest)
			So(decode(recorder).Error, ShouldEqual, "Image URL is required")
		})

		Convey("A relative url is rejected", func() {
			recorder := serve(New(fake, Options{}), http.MethodGet, "/api/manga/image?url=a.png")
			So(recorder.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Bytes are returned unchanged as image/jpeg", func() {
			recorder := serve(New(fake, Options{}), http.MethodGet, target)
			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(recorder.Header().Get("Content-Type"), ShouldEqual, "image/jpeg")
			So(recorder.Body.Bytes(), ShouldResemble, body)
			So(fake.id, ShouldEqual, "https://cdn.example.test/a.png")
		})

		Convey("The upstream type is forwarded when enabled", func() {
			recorder := serve(New(fake, Options{PassthroughContentType: true}), http.MethodGet, target)
			So(recorder.Header().Get("Content-Type"), ShouldEqual, "image/png")
		})

		Convey("Download failures become 500 envelopes", func() {
			fake.err = errors.New("Failed to download image: 404 - Not Found")
			recorder := serve(New(fake, Options{}), http.MethodGet, target)
			So(recorder.Code, ShouldEqual, http.StatusInternalServerError)
			So(decode(recorder).Error, ShouldEqual, "Failed to download image: 404 - Not Found")
		})
	})
}

func TestServiceRoutes(t *testing.T) {
	Convey("Given a server", t, func() {
		fake := &fakeSource{}
		server := New(fake, Options{})

		Convey("Health reports a timestamp", func() {
			fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
			server = newWithClock(fake, fixed)

			recorder := serve(server, http.MethodGet, "/api/health")
			So(recorder.Code, ShouldEqual, http.StatusOK)

			var body health
			So(json.Unmarshal(recorder.Body.Bytes(), &body), ShouldBeNil)
			So(body.Success, ShouldBeTrue)
			So(body.Message, ShouldEqual, "Shinigami API is running")
			So(body.Timestamp, ShouldEqual, "2024-05-01T12:00:00.000Z")
		})

		Convey("The index lists endpoints", func() {
			recorder := serve(server, http.MethodGet, "/")
			So(recorder.Code, ShouldEqual, http.StatusOK)
			So(recorder.Body.String(), ShouldContainSubstring, `"health":"/api/health"`)
		})

		Convey("Unknown routes are 404 envelopes", func() {
			for _, target := range []string{"/nope", "/api/manga/a/b/c/d"} {
				recorder := serve(server, http.MethodGet, target)
				So(recorder.Code, ShouldEqual, http.StatusNotFound)
				So(decode(recorder).Error, ShouldEqual, "Route not found")
			}

			recorder := serve(server, http.MethodPost, "/api/manga/popular")
			So(recorder.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

// newWithClock builds a server whose handlers observe a fixed time.
func newWithClock(src source.Source, now time.Time) *Server {
	h := &handlers{source: src, now: func() time.Time { return now }}
	return &Server{handler: chain(h.routes(), recoverer)}
}
