package sieve

type Kind uint8

const (
	Composite Kind = iota
	Prime
)

func (k Kind) String() string {
	if k == Prime {
		return "prime"
	}
	return "composite"
}

// Short returns the one-letter tag used in sequence dumps.
func (k Kind) Short() string {
	if k == Prime {
		return "P"
	}
	return "C"
}

// ParseKind accepts both the long and the one-letter form.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "P", "p", "prime":
		return Prime, true
	case "C", "c", "composite":
		return Composite, true
	}
	return Composite, false
}

type ClassifiedValue struct {
	Value int
	Kind  Kind
}
