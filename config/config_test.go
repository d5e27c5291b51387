package config

import (
	"testing"

	"github.com/shinigami-rest/shinigami/filesystem"
	"github.com/shinigami-rest/shinigami/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetInt(key.ServerPort), ShouldEqual, 3000)
			So(viper.GetString(key.ProviderAPIURL), ShouldEqual, "https://api.shngm.io")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("upstream.list_page_size")
			So(result, ShouldEqual, "upstream_list_page_size")
		})
	})
}

func TestEnv(t *testing.T) {
	Convey("Given the server port field", t, func() {
		field := Default[key.ServerPort]

		Convey("Env should be prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "SHINIGAMI_SERVER_PORT")
		})

		Convey("When only PORT is set", func() {
			t.Setenv("PORT", "8081")
			So(Setup(), ShouldBeNil)

			Convey("Then the port should be taken from it", func() {
				So(viper.GetInt(key.ServerPort), ShouldEqual, 8081)
			})
		})

		Convey("When both variables are set", func() {
			t.Setenv("PORT", "8081")
			t.Setenv("SHINIGAMI_SERVER_PORT", "9090")
			So(Setup(), ShouldBeNil)

			Convey("Then the prefixed one should win", func() {
				So(viper.GetInt(key.ServerPort), ShouldEqual, 9090)
			})
		})
	})
}

func TestPretty(t *testing.T) {
	Convey("Pretty should mention key and env", t, func() {
		So(Setup(), ShouldBeNil)
		field := Default[key.LogsLevel]
		out := field.Pretty()
		So(out, ShouldContainSubstring, key.LogsLevel)
		So(out, ShouldContainSubstring, "SHINIGAMI_LOGS_LEVEL")
	})
}
