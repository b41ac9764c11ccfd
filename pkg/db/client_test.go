package db_test

import (
	"context"
	"testing"

	"github.com/armandopadilla/lasttimei-lamdbda/pkg/db"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConnect(t *testing.T) {
	Convey("Given static test credentials and a local endpoint", t, func() {
		t.Setenv("AWS_ACCESS_KEY_ID", "test")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
		t.Setenv("AWS_EC2_METADATA_DISABLED", "true")

		Convey("When Connect is called twice", func() {
			first, err := db.Connect(context.Background(), db.Options{Region: "us-west-2", Endpoint: "http://localhost:8000"})
			So(err, ShouldBeNil)
			second, err := db.Connect(context.Background(), db.Options{Region: "eu-west-1"})
			So(err, ShouldBeNil)

			Convey("Then the same client is returned with the first options", func() {
				So(first, ShouldNotBeNil)
				So(second, ShouldEqual, first)
				So(db.Client(), ShouldEqual, first)
				So(first.Options().Region, ShouldEqual, "us-west-2")
				So(*first.Options().BaseEndpoint, ShouldEqual, "http://localhost:8000")
			})
		})
	})
}
