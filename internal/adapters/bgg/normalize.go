package bgg

import (
	"github.com/meeplewise/advisor/internal/domain/model"
)

// Normalize converts one raw detail document into a GameInfo. The
// display name comes from the search result, not the detail document.
// Any missing or unparsable required field fails the whole candidate;
// the orchestrator logs and skips it.
func Normalize(displayName string, item *ThingItem) (model.GameInfo, error) {
	minPlayers, err := item.MinPlayers.Int("minplayers")
	if err != nil {
		return model.GameInfo{}, err
	}
	maxPlayers, err := item.MaxPlayers.Int("maxplayers")
	if err != nil {
		return model.GameInfo{}, err
	}
	playtime, err := item.PlayingTime.Int("playingtime")
	if err != nil {
		return model.GameInfo{}, err
	}
	weight, err := item.Statistics.Ratings.AverageWeight.Float("averageweight")
	if err != nil {
		return model.GameInfo{}, err
	}
	rating, err := item.Statistics.Ratings.Average.Float("average")
	if err != nil {
		return model.GameInfo{}, err
	}
	numRatings, err := item.Statistics.Ratings.UsersRated.Int("usersrated")
	if err != nil {
		return model.GameInfo{}, err
	}

	info := model.GameInfo{
		Name:        displayName,
		MinPlayers:  minPlayers,
		MaxPlayers:  maxPlayers,
		Playtime:    playtime,
		Weight:      weight,
		Rating:      rating,
		NumRatings:  numRatings,
		Description: item.Description,
	}

	for _, l := range item.Links {
		switch l.Type {
		case linkTypeMechanic:
			info.Mechanics = append(info.Mechanics, l.Value)
		case linkTypeCategory:
			info.Categories = append(info.Categories, l.Value)
		}
	}

	return info, nil
}
