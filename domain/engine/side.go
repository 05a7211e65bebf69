package engine

// Side tags an order as buying or selling. No other values exist.
type Side int8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "invalid"
	}
}

func (s Side) valid() bool {
	return s == Buy || s == Sell
}

func (s Side) opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}
