package sieve

import "iter"

// Generate yields every integer in [1, limit-1] exactly once, in the order
// the sieve discovers it. Composites are yielded while the marking pass of
// their smallest prime factor runs, interleaved with the outer scan.
//
// limit must be at least 2; grid sizes always produce limit = size*size + 1.
func Generate(limit int) iter.Seq[ClassifiedValue] {
	return func(yield func(ClassifiedValue) bool) {
		if !yield(ClassifiedValue{Value: 1, Kind: Composite}) {
			return
		}

		// marked[i] covers the value i+2
		marked := make([]bool, limit-2)
		for i := 0; i < len(marked); {
			if !marked[i] {
				p := i + 2
				if !yield(ClassifiedValue{Value: p, Kind: Prime}) {
					return
				}
				for m := p * p; m < limit; m += p {
					if marked[m-2] {
						continue
					}
					marked[m-2] = true
					if !yield(ClassifiedValue{Value: m, Kind: Composite}) {
						return
					}
				}
			}
			if i == 0 {
				i++
			} else {
				i += 2
			}
		}
	}
}

// Collect materializes Generate(limit).
func Collect(limit int) []ClassifiedValue {
	out := make([]ClassifiedValue, 0, limit-1)
	for cv := range Generate(limit) {
		out = append(out, cv)
	}
	return out
}

// Classify returns the kind of every value below limit, indexed by value.
// Index 0 is unused.
func Classify(limit int) []Kind {
	kinds := make([]Kind, limit)
	for cv := range Generate(limit) {
		kinds[cv.Value] = cv.Kind
	}
	return kinds
}

func CountPrimes(values []ClassifiedValue) int {
	n := 0
	for _, cv := range values {
		if cv.Kind == Prime {
			n++
		}
	}
	return n
}
