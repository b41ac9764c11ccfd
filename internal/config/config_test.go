package config_test

import (
	"testing"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Mode, convey.ShouldEqual, config.ModeLambda)
			convey.So(cfg.Store, convey.ShouldEqual, config.StoreDynamoDB)
			convey.So(cfg.TableName, convey.ShouldEqual, "lasttimei_events")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.Actions, convey.ShouldBeEmpty)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
