package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewDefaults(t *testing.T) {
	Convey("Given a default config", t, func() {
		c := New()

		Convey("Then server defaults should be set", func() {
			So(c.Addr, ShouldEqual, ":8080")
			So(c.LogLevel, ShouldEqual, "info")
		})

		Convey("And upstream defaults should match the game database API", func() {
			So(c.BGGBaseURL, ShouldEqual, "https://boardgamegeek.com/xmlapi2")
			So(c.BGGTimeoutMS, ShouldBeGreaterThan, 0)
			So(c.BGGRatePerSec, ShouldBeGreaterThan, 0)
		})

		Convey("And pipeline defaults should be set", func() {
			So(c.CandidateCap, ShouldEqual, 30)
			So(c.TopN, ShouldEqual, 3)
			So(c.DetailRetryDelayMS, ShouldEqual, 2000)
			So(c.DetailMaxAttempts, ShouldEqual, 3)
			So(c.FetchConcurrency, ShouldEqual, 4)
		})

		Convey("And scoring defaults should match the reference weights", func() {
			So(c.BaseScore, ShouldEqual, 10.0)
			So(c.RatingCountDivisor, ShouldEqual, 1000.0)
			So(c.PopularityCap, ShouldEqual, 5.0)
			So(c.MechanicBonus, ShouldEqual, 2.0)
			So(c.CategoryBonus, ShouldEqual, 1.5)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given config validation", t, func() {
		Convey("When the config is a default one", func() {
			So(New().validate(), ShouldBeNil)
		})

		Convey("When addr is empty", func() {
			c := New()
			c.Addr = ""
			So(c.validate(), ShouldNotBeNil)
		})

		Convey("When the base URL is empty", func() {
			c := New()
			c.BGGBaseURL = ""
			So(c.validate(), ShouldNotBeNil)
		})

		Convey("When the candidate cap is non-positive", func() {
			c := New()
			c.CandidateCap = 0
			So(c.validate(), ShouldNotBeNil)
		})

		Convey("When top_n is non-positive", func() {
			c := New()
			c.TopN = -1
			So(c.validate(), ShouldNotBeNil)
		})

		Convey("When detail attempts are non-positive", func() {
			c := New()
			c.DetailMaxAttempts = 0
			So(c.validate(), ShouldNotBeNil)
		})

		Convey("When fetch concurrency is non-positive", func() {
			c := New()
			c.FetchConcurrency = 0
			So(c.validate(), ShouldNotBeNil)
		})
	})
}
