package deck

import "errors"

// ErrNotCard is an error when something other than a playing card is added to a deck
var ErrNotCard = errors.New("only cards can be added to the deck")

// ErrPossibleCheating identifies cases where there is suspicion of manipulation
// of a deck of cards. Nothing returns it yet; it is reserved for future
// integrity checks built on HashCode.
var ErrPossibleCheating = errors.New("possible deck manipulation detected")
