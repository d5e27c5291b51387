package icon

import (
	"testing"

	"github.com/shinigami-rest/shinigami/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Every icon should render in every variant", t, func() {
		for _, variant := range AvailableVariants() {
			viper.Set(key.IconsVariant, variant)
			for i := range icons {
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})

	Convey("The plain variant should stay ASCII friendly", t, func() {
		viper.Set(key.IconsVariant, "plain")
		So(Get(Success), ShouldEqual, "✓")
		So(Get(Link), ShouldEqual, "->")
	})

	Convey("Unknown variants render nothing", t, func() {
		viper.Set(key.IconsVariant, "nerd")
		So(Get(Fail), ShouldBeEmpty)
	})
}
