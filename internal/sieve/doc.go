// Package sieve generates the discovery order of the Sieve of Eratosthenes.
//
// The generator does not just classify integers, it reports them in the
// order the sieve touches them:
//
//   - 1 first, tagged [Composite] by convention
//   - each prime the moment the outer scan reaches it unmarked
//   - each composite the moment a prime's marking pass first crosses it
//
// # Example
//
//	for cv := range sieve.Generate(101) {
//	    fmt.Println(cv.Value, cv.Kind.Short())
//	}
//
// The first emissions for limit 101 are 1C 2P 4C 6C 8C ... 100C 3P 9C 15C.
package sieve
