package deck

// Suit represents a card suit
type Suit int

// suit constants, in enumeration order
const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		panic("unknown suit")
	}
}

// Suits returns the suits in the order a deck is built from
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}
