package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"iter"

	"cardtable/internal/rng"
)

// Deck represents a playing deck.
// A Deck is not safe for concurrent use. Callers must treat it as owned by a
// single goroutine, or synchronize Shuffle/Draw/AddCard externally.
type Deck struct {
	cards []*Card
	rand  rng.Generator
}

// New returns a new deck of 52 cards, one per suit and rank combination,
// enumerated suit-major then rank-minor: the Two of Clubs is on top and the
// Ace of Spades is on the bottom.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		rand: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// NewShuffled returns a new deck shuffled before first use
func NewShuffled() *Deck {
	return New().Shuffle()
}

// SetRand will set the random source used for shuffling.
// This should only be used by tests or when a reproducible shuffle is needed.
func (d *Deck) SetRand(gen rng.Generator) {
	d.rand = gen
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	d.cards = cards
}

// Shuffle will shuffle the current contents of the deck in place and return
// the deck for chaining. The deck may hold any number of cards, including
// none.
func (d *Deck) Shuffle() *Deck {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := d.rand.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}

	return d
}

// Draw will remove and return the top card.
// If there are no more cards, a nil card is returned.
func (d *Deck) Draw() *Card {
	if len(d.cards) == 0 {
		return nil
	}

	card := d.cards[0]
	d.cards = d.cards[1:]

	return card
}

// AddCard appends the card to the bottom of the deck.
// ErrNotCard is returned for a nil card and the deck is left unmodified.
// Duplicates are not rejected; any card value is accepted.
func (d *Deck) AddCard(card *Card) error {
	if card == nil {
		return ErrNotCard
	}

	d.cards = append(d.cards, card)
	return nil
}

// Cards returns a snapshot of the cards currently in the deck.
// Mutating the returned slice does not affect the deck.
func (d *Deck) Cards() []*Card {
	cards := make([]*Card, len(d.cards))
	copy(cards, d.cards)

	return cards
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Card returns the card at the given 0-based position.
// Like a slice access, an out-of-range index panics.
func (d *Deck) Card(index int) *Card {
	return d.cards[index]
}

// Iter yields the highest card followed by the lowest card, then stops.
// It deliberately does not enumerate the full deck; use Cards() for that.
// An empty deck yields nothing.
func (d *Deck) Iter() iter.Seq[*Card] {
	return func(yield func(*Card) bool) {
		highest := d.Max()
		lowest := d.Min()
		if highest == nil || lowest == nil {
			return
		}

		if !yield(highest) {
			return
		}

		yield(lowest)
	}
}

// Max returns the highest card in the deck, or nil if the deck is empty
func (d *Deck) Max() *Card {
	var max *Card
	for _, card := range d.cards {
		if max == nil || card.Greater(max) {
			max = card
		}
	}

	return max
}

// Min returns the lowest card in the deck, or nil if the deck is empty
func (d *Deck) Min() *Card {
	var min *Card
	for _, card := range d.cards {
		if min == nil || card.Less(min) {
			min = card
		}
	}

	return min
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.cards) >= want
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(card.DisplayName()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
