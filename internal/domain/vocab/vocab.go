// Package vocab holds reference vocabularies of well-known game
// mechanics and categories. They feed the preference pickers on the
// home page; upstream values are never validated or translated against
// them, since the game database reports names directly.
package vocab

// Mechanics is the reference catalog of gameplay mechanics.
var Mechanics = []string{
	"Deck Building",
	"Worker Placement",
	"Dice Rolling",
	"Card Drafting",
	"Area Control",
	"Tile Placement",
	"Resource Management",
	"Cooperative Play",
	"Hand Management",
	"Set Collection",
	"Auction/Bidding",
	"Route Building",
	"Action Points",
	"Variable Player Powers",
	"Modular Board",
}

// Categories is the reference catalog of game categories.
var Categories = []string{
	"Strategy",
	"Family",
	"Party",
	"Thematic",
	"Euro",
	"War Game",
	"Abstract",
	"Cooperative",
	"Economic",
	"Adventure",
	"Card Game",
	"Educational",
	"Miniatures",
	"Puzzle",
	"Civilization",
}
