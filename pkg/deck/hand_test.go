package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_Discard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,3c,4d"))
	assert.Equal(t, 2, hand.Discard(CardFromString("3c")))
	assert.Equal(t, "2c,4d", hand.String())

	hand = Hand(CardsFromString("2c,3c,3c,4d"))
	assert.Equal(t, 1, hand.Discard(CardFromString("3c"), 1))
	assert.Equal(t, "2c,3c,4d", hand.String())
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", h.String())
}

func TestHand_sort(t *testing.T) {
	// rank orders first, suit breaks ties
	hand := Hand(CardsFromString("14s,2d,14c,2c"))
	sort.Sort(hand)
	assert.Equal(t, "2c,2d,14c,14s", hand.String())
}

func TestHand_FirstCardLastCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("2c,3c,4d"))
	a.True(hand.FirstCard().Equal(CardFromString("2c")))
	a.True(hand.LastCard().Equal(CardFromString("4d")))

	hand = Hand{}
	a.Nil(hand.FirstCard())
	a.Nil(hand.LastCard())
}

func TestHand_Clone(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c"))
	clone := hand.Clone()
	clone[0] = CardFromString("14s")

	assert.Equal(t, "2c,3c", hand.String())
	assert.Equal(t, "14s,3c", clone.String())
}
