package version

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shinigami-rest/shinigami/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"tag_name":"v1.4.2"}`))
		}))
		defer server.Close()

		previous := releasesURL
		releasesURL = server.URL
		defer func() { releasesURL = previous }()

		Convey("Latest should strip the v prefix and cache the answer", func() {
			version, err := Latest()
			So(err, ShouldBeNil)
			So(version, ShouldEqual, "1.4.2")

			version, err = Latest()
			So(err, ShouldBeNil)
			So(version, ShouldEqual, "1.4.2")
			So(hits.Load(), ShouldEqual, 1)
		})
	})
}
