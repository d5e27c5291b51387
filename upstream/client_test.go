package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Options{
		HTTP:    server.Client(),
		APIURL:  server.URL,
		BaseURL: "https://app.example.test",
		Random:  func() string { return "abcXYZ" },
	})
}

func TestFetchJSON(t *testing.T) {
	Convey("Given an upstream answering JSON", t, func() {
		var got *http.Request
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = r
			_, _ = w.Write([]byte(`{"data":[]}`))
		})

		query := url.Values{"page": {"2"}, "sort": {"popularity"}}
		value, err := client.FetchJSON(context.Background(), "/v1/manga/list", query)

		Convey("The body is decoded into a generic tree", func() {
			So(err, ShouldBeNil)
			So(value, ShouldResemble, map[string]any{"data": []any{}})
		})

		Convey("Path and query are forwarded", func() {
			So(got.URL.Path, ShouldEqual, "/v1/manga/list")
			So(got.URL.Query().Get("page"), ShouldEqual, "2")
			So(got.URL.Query().Get("sort"), ShouldEqual, "popularity")
		})

		Convey("Browser-like headers are sent", func() {
			So(got.Header.Get("Accept"), ShouldEqual, "application/json")
			So(got.Header.Get("DNT"), ShouldEqual, "1")
			So(got.Header.Get("Origin"), ShouldEqual, "https://app.example.test")
			So(got.Header.Get("Sec-GPC"), ShouldEqual, "1")
			So(got.Header.Get("X-Requested-With"), ShouldEqual, "abcXYZ")
		})
	})
}

func TestFetchJSONFailures(t *testing.T) {
	Convey("The upstream message is used when present", t, func() {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"manga not found"}`))
		})

		_, err := client.FetchJSON(context.Background(), "/v1/manga/detail/x", nil)
		So(err, ShouldNotBeNil)

		var upstreamErr *Error
		So(errors.As(err, &upstreamErr), ShouldBeTrue)
		So(upstreamErr.Status, ShouldEqual, http.StatusNotFound)
		So(err.Error(), ShouldEqual, "404 - manga not found")
	})

	Convey("Statuses without a message fall back to a generic one", t, func() {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		})

		_, err := client.FetchJSON(context.Background(), "/v1/manga/list", nil)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "502 - Request failed with status code 502")
	})

	Convey("Transport failures carry the cause and no status", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		addr := server.URL
		server.Close()

		client := New(Options{HTTP: &http.Client{Timeout: time.Second}, APIURL: addr})
		_, err := client.FetchJSON(context.Background(), "/v1/manga/list", nil)

		var upstreamErr *Error
		So(errors.As(err, &upstreamErr), ShouldBeTrue)
		So(upstreamErr.Status, ShouldEqual, 0)
		So(upstreamErr.Err, ShouldNotBeNil)
	})

	Convey("A cancelled context aborts the call", t, func() {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.FetchJSON(ctx, "/v1/manga/list", nil)
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})

	Convey("A non-JSON body fails to decode", t, func() {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})

		_, err := client.FetchJSON(context.Background(), "/v1/manga/list", nil)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "decode response")
	})
}

func TestFetchBinary(t *testing.T) {
	Convey("Given an upstream serving an image", t, func() {
		image := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
		var got *http.Request
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = r
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(image)
		})

		blob, err := client.FetchBinary(context.Background(), client.apiURL+"/img/1.png")

		Convey("Bytes and content type are returned unchanged", func() {
			So(err, ShouldBeNil)
			So(blob.Body, ShouldResemble, image)
			So(blob.ContentType, ShouldEqual, "image/png")
		})

		Convey("Image headers are sent", func() {
			So(got.Header.Get("Accept"), ShouldEqual, imageAccept)
			So(got.Header.Get("Referer"), ShouldEqual, "https://app.example.test/")
			So(got.Header.Get("Sec-Fetch-Dest"), ShouldEqual, "empty")
			So(got.Header.Get("Sec-GPC"), ShouldEqual, "1")
			So(got.Header.Get("DNT"), ShouldEqual, "1")
			So(got.Header.Get("X-Requested-With"), ShouldEqual, "abcXYZ")
		})
	})

	Convey("Failed downloads report the status", t, func() {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.FetchBinary(context.Background(), client.apiURL+"/img/1.png")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "403 - Request failed with status code 403")
	})
}

func TestRandomLetters(t *testing.T) {
	Convey("Random letters are 1 to 20 ASCII letters", t, func() {
		pattern := regexp.MustCompile(`^[a-zA-Z]{1,20}$`)
		for i := 0; i < 200; i++ {
			So(pattern.MatchString(RandomLetters()), ShouldBeTrue)
		}
	})
}

func TestNewDefaults(t *testing.T) {
	Convey("Zero options are filled in and URLs lose their trailing slash", t, func() {
		client := New(Options{APIURL: "https://api.example.test/", BaseURL: "https://app.example.test/"})
		So(client.http, ShouldNotBeNil)
		So(client.random, ShouldNotBeNil)
		So(client.apiURL, ShouldEqual, "https://api.example.test")
		So(client.BaseURL(), ShouldEqual, "https://app.example.test")
	})
}
