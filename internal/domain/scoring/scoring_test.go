package scoring_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/meeplewise/advisor/internal/domain/model"
	"github.com/meeplewise/advisor/internal/domain/scoring"
)

func pref(v float64) *model.FlexFloat {
	f := model.FlexFloat(v)
	return &f
}

func TestPreferenceScorer(t *testing.T) {
	Convey("Given a scorer with default weights", t, func() {
		scorer := scoring.NewPreferenceScorer()

		game := model.GameInfo{
			Name:       "Dominion",
			MinPlayers: 2,
			MaxPlayers: 4,
			Rating:     7.5,
			NumRatings: 2500,
			Weight:     2.8,
			Mechanics:  []string{"Deck Building", "Dice Rolling"},
			Categories: []string{"Card Game"},
		}

		Convey("When one player prefers a matching mechanic", func() {
			players := []model.PlayerPreference{{Mechanics: []string{"Deck Building"}}}
			res := scorer.Score(game, players, 4)

			Convey("Then the score should be base + rating + popularity + mechanic bonus", func() {
				// 10 + 7.5 + min(5, 2.5) + 2 = 22.0
				So(res.Eligible, ShouldBeTrue)
				So(res.Score, ShouldEqual, 22.0)
			})
		})

		Convey("When the group is larger than the game supports", func() {
			players := []model.PlayerPreference{{Mechanics: []string{"Deck Building"}}}
			res := scorer.Score(game, players, 6)

			Convey("Then the game should be ineligible with zero score", func() {
				So(res.Eligible, ShouldBeFalse)
				So(res.Score, ShouldEqual, 0)
			})
		})

		Convey("When the group is smaller than the game supports", func() {
			res := scorer.Score(game, nil, 1)

			Convey("Then the game should be ineligible", func() {
				So(res.Eligible, ShouldBeFalse)
				So(res.Score, ShouldEqual, 0)
			})
		})

		Convey("When a player has a weight preference", func() {
			players := []model.PlayerPreference{{WeightPreference: pref(1.0)}}
			res := scorer.Score(game, players, 3)

			Convey("Then the complexity mismatch should subtract", func() {
				// 10 + 7.5 + 2.5 - |2.8-1.0| = 18.2
				So(res.Eligible, ShouldBeTrue)
				So(res.Score, ShouldAlmostEqual, 18.2, 1e-9)
			})
		})

		Convey("When a player prefers matching categories", func() {
			players := []model.PlayerPreference{{Categories: []string{"Card Game", "Economic"}}}
			res := scorer.Score(game, players, 2)

			Convey("Then each match should add the category bonus", func() {
				// 10 + 7.5 + 2.5 + 1.5 = 21.5
				So(res.Score, ShouldAlmostEqual, 21.5, 1e-9)
			})
		})

		Convey("When mismatched weight preferences drive the score negative", func() {
			heavy := model.GameInfo{MinPlayers: 1, MaxPlayers: 8, Weight: 5.0, Rating: 0, NumRatings: 0}
			players := []model.PlayerPreference{
				{WeightPreference: pref(0)},
				{WeightPreference: pref(0)},
				{WeightPreference: pref(0)},
			}
			res := scorer.Score(heavy, players, 4)

			Convey("Then the score should floor at zero but stay eligible", func() {
				// 10 - 5 - 5 - 5 = -5 -> 0
				So(res.Eligible, ShouldBeTrue)
				So(res.Score, ShouldEqual, 0)
			})
		})

		Convey("When the popularity bonus exceeds the cap", func() {
			popular := game
			popular.NumRatings = 50000
			res := scorer.Score(popular, nil, 3)

			Convey("Then the bonus should be capped", func() {
				// 10 + 7.5 + 5 = 22.5
				So(res.Score, ShouldEqual, 22.5)
			})
		})

		Convey("When scoring the same inputs twice", func() {
			players := []model.PlayerPreference{
				{WeightPreference: pref(2.0), Mechanics: []string{"Dice Rolling"}},
			}
			first := scorer.Score(game, players, 3)
			second := scorer.Score(game, players, 3)

			Convey("Then the results should be identical", func() {
				So(first, ShouldResemble, second)
			})
		})
	})

	Convey("Given a scorer with custom weights", t, func() {
		scorer := scoring.NewPreferenceScorer(
			scoring.WithBaseScore(0),
			scoring.WithMechanicBonus(10),
			scoring.WithCategoryBonus(0),
			scoring.WithPopularityCap(0),
		)

		game := model.GameInfo{
			MinPlayers: 2,
			MaxPlayers: 6,
			Mechanics:  []string{"Worker Placement"},
			Categories: []string{"Euro"},
		}

		Convey("When scoring with a matching mechanic", func() {
			players := []model.PlayerPreference{
				{Mechanics: []string{"Worker Placement"}, Categories: []string{"Euro"}},
			}
			res := scorer.Score(game, players, 4)

			Convey("Then only the mechanic bonus should apply", func() {
				So(res.Score, ShouldEqual, 10)
			})
		})
	})
}
