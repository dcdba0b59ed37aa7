package deck

// Rank represents a card rank. Aces are always high.
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = [...]string{
	"Two",
	"Three",
	"Four",
	"Five",
	"Six",
	"Seven",
	"Eight",
	"Nine",
	"Ten",
	"Jack",
	"Queen",
	"King",
	"Ace",
}

func (r Rank) String() string {
	if r < Two || r > Ace {
		panic("unknown rank")
	}

	return rankNames[r-Two]
}

// Ranks returns the ranks in the order a deck is built from
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for rank := Two; rank <= Ace; rank++ {
		ranks = append(ranks, rank)
	}

	return ranks
}
