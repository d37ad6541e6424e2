package rank_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/meeplewise/advisor/internal/domain/model"
	"github.com/meeplewise/advisor/internal/domain/rank"
)

func scored(name string, score float64) model.ScoredGame {
	return model.ScoredGame{Info: model.GameInfo{Name: name}, Score: score}
}

func TestTop(t *testing.T) {
	Convey("Given a list of scored games", t, func() {
		games := []model.ScoredGame{
			scored("low", 11.0),
			scored("high", 25.5),
			scored("mid", 18.0),
			scored("floor", 0.5),
		}

		Convey("When taking the top 3", func() {
			top := rank.Top(games, 3)

			Convey("Then it should be sorted non-increasing and capped", func() {
				So(top, ShouldHaveLength, 3)
				So(top[0].Info.Name, ShouldEqual, "high")
				So(top[1].Info.Name, ShouldEqual, "mid")
				So(top[2].Info.Name, ShouldEqual, "low")
			})

			Convey("And the input should be untouched", func() {
				So(games[0].Info.Name, ShouldEqual, "low")
			})
		})

		Convey("When n exceeds the list length", func() {
			top := rank.Top(games, 10)

			Convey("Then all games should be returned sorted", func() {
				So(top, ShouldHaveLength, 4)
				So(top[3].Info.Name, ShouldEqual, "floor")
			})
		})

		Convey("When n is zero or negative", func() {
			So(rank.Top(games, 0), ShouldBeNil)
			So(rank.Top(games, -1), ShouldBeNil)
		})

		Convey("When the list is empty", func() {
			So(rank.Top(nil, 3), ShouldHaveLength, 0)
		})

		Convey("When scores tie", func() {
			tied := []model.ScoredGame{
				scored("first", 20.0),
				scored("second", 20.0),
				scored("third", 20.0),
			}
			top := rank.Top(tied, 3)

			Convey("Then the original order should be preserved", func() {
				So(top[0].Info.Name, ShouldEqual, "first")
				So(top[1].Info.Name, ShouldEqual, "second")
				So(top[2].Info.Name, ShouldEqual, "third")
			})
		})
	})
}
