package eval

import "github.com/pkg/errors"

// Strategy selects when function arguments are evaluated.
type Strategy int

const (
	// CallByValue evaluates arguments before the call.
	CallByValue Strategy = iota
	// CallByName passes arguments as thunks that are re-evaluated every time
	// they are used.
	CallByName
	// CallByNeed passes arguments as thunks that are evaluated at most once.
	CallByNeed
)

// Strategies lists every strategy by the name ParseStrategy accepts.
var Strategies = []Strategy{CallByValue, CallByName, CallByNeed}

// ParseStrategy accepts "value", "name" or "need".
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if s.String() == name {
			return s, nil
		}
	}
	return CallByValue, errors.Errorf("unknown evaluation strategy %q (expected value, name or need)", name)
}

func (s Strategy) String() string {
	switch s {
	case CallByName:
		return "name"
	case CallByNeed:
		return "need"
	default:
		return "value"
	}
}

// Lazy reports whether arguments are passed as thunks.
func (s Strategy) Lazy() bool {
	return s != CallByValue
}
