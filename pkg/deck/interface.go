package deck

import (
	"fmt"
	"iter"
)

// CardInterface is the contract satisfied by an individual playing card
type CardInterface interface {
	// Suit returns the card's suit
	Suit() Suit

	// Rank returns the card's rank
	Rank() Rank

	// DisplayName returns the human-readable name (i.e., "Ace of Spades")
	DisplayName() string

	// Equal returns true if the cards match on suit and rank
	Equal(card *Card) bool

	// Less returns true if the card sorts strictly before the other card
	Less(card *Card) bool

	// Greater returns true if the card sorts strictly after the other card
	Greater(card *Card) bool

	// Hash returns an integer hash consistent with Equal
	Hash() int

	fmt.Stringer
	fmt.GoStringer
}

// DeckInterface is the contract satisfied by a deck of cards
type DeckInterface interface {
	// Shuffle re-permutes the deck in place and returns it for chaining
	Shuffle() *Deck

	// Draw removes and returns the top card, or nil if the deck is empty
	Draw() *Card

	// AddCard appends a card to the bottom of the deck
	AddCard(card *Card) error

	// Cards returns an independent snapshot of the deck's contents
	Cards() []*Card

	// Len returns the number of cards left in the deck
	Len() int

	// Card returns the card at the given 0-based position
	Card(index int) *Card

	// Iter yields the highest card followed by the lowest card
	Iter() iter.Seq[*Card]

	// Max returns the highest card, or nil if the deck is empty
	Max() *Card

	// Min returns the lowest card, or nil if the deck is empty
	Min() *Card
}

var _ CardInterface = (*Card)(nil)
var _ DeckInterface = (*Deck)(nil)
