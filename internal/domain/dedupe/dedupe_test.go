package dedupe_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/meeplewise/advisor/internal/domain/dedupe"
)

func TestNameDeduper(t *testing.T) {
	Convey("Given a new name deduper", t, func() {
		d := dedupe.NewNameDeduper()

		Convey("Then it should start empty", func() {
			So(d.Size(), ShouldEqual, 0)
		})

		Convey("When recording a new name", func() {
			seen := d.SeenAndRecord("Catan")

			Convey("Then it should report unseen and record it", func() {
				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When recording the same name twice", func() {
			d.SeenAndRecord("Catan")
			seen := d.SeenAndRecord("Catan")

			Convey("Then the second call should report seen", func() {
				So(seen, ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When recording several distinct names", func() {
			names := []string{"Catan", "Azul", "Wingspan"}
			for _, n := range names {
				So(d.SeenAndRecord(n), ShouldBeFalse)
			}

			Convey("Then all should be recorded", func() {
				So(d.Size(), ShouldEqual, len(names))
			})
		})

		Convey("When names differ only by case", func() {
			So(d.SeenAndRecord("Catan"), ShouldBeFalse)
			So(d.SeenAndRecord("catan"), ShouldBeFalse)

			Convey("Then they should count as distinct", func() {
				So(d.Size(), ShouldEqual, 2)
			})
		})
	})
}
