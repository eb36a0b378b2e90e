package account

import "strings"

// Kind is the closed set of account kinds an individual holds.
type Kind string

const (
	Checking   Kind = "Checking"
	Savings    Kind = "Savings"
	CreditCard Kind = "Credit Card"
)

// Kinds lists every account kind in statement order.
func Kinds() []Kind {
	return []Kind{Checking, Savings, CreditCard}
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	switch k {
	case Checking, Savings, CreditCard:
		return true
	}
	return false
}

// Key is the normalized lookup name: lower-cased with spaces removed.
func (k Kind) Key() string {
	return NormalizeKey(string(k))
}

// DefaultPolarity is the polarity accounts of this kind are created with.
func (k Kind) DefaultPolarity() Polarity {
	if k == CreditCard {
		return Liability
	}
	return Asset
}

func (k Kind) String() string { return string(k) }

// ParseKind resolves user input such as "creditcard" or "Credit Card".
func ParseKind(s string) (Kind, error) {
	key := NormalizeKey(s)
	for _, k := range Kinds() {
		if k.Key() == key {
			return k, nil
		}
	}
	return "", ErrInvalidKind
}

// NormalizeKey lower-cases s and strips all spaces.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

// Polarity classifies an account as an asset or a liability.
type Polarity int

const (
	// Asset balances move with debits.
	Asset Polarity = iota
	// Liability balances move with credits.
	Liability
)

var polaritySigns = map[Polarity]int64{
	Asset:     1,
	Liability: -1,
}

// Valid reports whether p is Asset or Liability.
func (p Polarity) Valid() bool {
	_, ok := polaritySigns[p]
	return ok
}

// Sign is the multiplier applied to a debit amount: +1 for assets, -1 for
// liabilities. Invalid polarities have sign 0.
func (p Polarity) Sign() int64 {
	return polaritySigns[p]
}

// IsLiability reports whether p is Liability. Used as the persisted flag.
func (p Polarity) IsLiability() bool {
	return p == Liability
}

// PolarityFromFlag maps the persisted liability flag back to a Polarity.
func PolarityFromFlag(liability bool) Polarity {
	if liability {
		return Liability
	}
	return Asset
}

func (p Polarity) String() string {
	switch p {
	case Asset:
		return "asset"
	case Liability:
		return "liability"
	}
	return "unknown"
}
