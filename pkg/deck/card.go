package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Card is an individual playing card. Cards are immutable once constructed;
// the suit and rank are fixed for the life of the card.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard returns a card with the given suit and rank
func NewCard(suit Suit, rank Rank) *Card {
	return &Card{
		suit: suit,
		rank: rank,
	}
}

// Suit returns the card's suit
func (c *Card) Suit() Suit {
	return c.suit
}

// Rank returns the card's rank
func (c *Card) Rank() Rank {
	return c.rank
}

// DisplayName returns the human-readable name (i.e., "Ace of Spades")
func (c *Card) DisplayName() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

// Equal returns true if the cards are equal (matches suit and rank).
// A nil card is never equal.
func (c *Card) Equal(card *Card) bool {
	if card == nil {
		return false
	}

	return c.rank == card.rank && c.suit == card.suit
}

// Less returns true if the card sorts strictly before the other card.
// Rank is compared first and suit breaks ties. A nil card compares false.
func (c *Card) Less(card *Card) bool {
	if card == nil {
		return false
	}

	if c.rank != card.rank {
		return c.rank < card.rank
	}

	return c.suit < card.suit
}

// Greater returns true if the card sorts strictly after the other card.
// A nil card compares false.
func (c *Card) Greater(card *Card) bool {
	if card == nil {
		return false
	}

	return !c.Equal(card) && !c.Less(card)
}

// Hash returns an integer hash consistent with Equal: equal cards always
// hash to the same value
func (c *Card) Hash() int {
	return int(c.rank)<<3 | int(c.suit)
}

func (c *Card) String() string {
	return c.DisplayName()
}

// GoString returns the debug representation used by the %#v verb
func (c *Card) GoString() string {
	return fmt.Sprintf("Card(suit=%s, rank=%s)", c.suit, c.rank)
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return NewCard(suit, Rank(rank))
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
