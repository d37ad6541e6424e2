// Package bgg is the client adapter for the BoardGameGeek XML API.
package bgg

import (
	"fmt"
	"strconv"
)

// searchResponse mirrors the /search response document. Repeated <item>
// elements decode into the slice whether the document carries one or
// many, which is the single normalization point for the upstream's
// singular-result shape.
type searchResponse struct {
	Items []SearchItem `xml:"item"`
}

// SearchItem is one candidate from a search response.
type SearchItem struct {
	ID   string   `xml:"id,attr"`
	Type string   `xml:"type,attr"`
	Name ItemName `xml:"name"`
}

// DisplayName returns the primary name attached to the search result.
// Detail documents carry their own name list, but display always uses
// the search-level name.
func (s SearchItem) DisplayName() string {
	return s.Name.Value
}

// ItemName is a name element with its value carried as an attribute.
type ItemName struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

// thingResponse mirrors the /thing response document.
type thingResponse struct {
	Items []ThingItem `xml:"item"`
}

// ThingItem is one game's full detail document.
type ThingItem struct {
	ID          string     `xml:"id,attr"`
	Description string     `xml:"description"`
	MinPlayers  AttrValue  `xml:"minplayers"`
	MaxPlayers  AttrValue  `xml:"maxplayers"`
	PlayingTime AttrValue  `xml:"playingtime"`
	Links       []Link     `xml:"link"`
	Statistics  Statistics `xml:"statistics"`
}

// Statistics wraps the ratings block of a detail document.
type Statistics struct {
	Ratings Ratings `xml:"ratings"`
}

// Ratings carries the community statistics used for scoring.
type Ratings struct {
	UsersRated    AttrValue `xml:"usersrated"`
	Average       AttrValue `xml:"average"`
	AverageWeight AttrValue `xml:"averageweight"`
}

// Link is a typed annotation on a detail document. Mechanics and
// categories arrive as links tagged boardgamemechanic/boardgamecategory.
type Link struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

// Link type tags used by the upstream API.
const (
	linkTypeMechanic = "boardgamemechanic"
	linkTypeCategory = "boardgamecategory"
)

// AttrValue is a leaf element whose payload is a value attribute.
type AttrValue struct {
	Value string `xml:"value,attr"`
}

// Int parses the attribute as an integer. A missing element decodes to
// an empty value and fails the parse, which is the desired strictness.
func (a AttrValue) Int(field string) (int, error) {
	v, err := strconv.Atoi(a.Value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformedDetail, field, a.Value)
	}
	return v, nil
}

// Float parses the attribute as a float64.
func (a AttrValue) Float(field string) (float64, error) {
	v, err := strconv.ParseFloat(a.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformedDetail, field, a.Value)
	}
	return v, nil
}

// firstItem collapses a detail item list to its first element. The
// upstream wraps even single results in a list; requests for one id
// yield exactly one element.
func firstItem(items []ThingItem) (*ThingItem, bool) {
	if len(items) == 0 {
		return nil, false
	}
	return &items[0], true
}
