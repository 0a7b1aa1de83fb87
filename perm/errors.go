package perm

import "errors"

var (
	// ErrNotBijective indicates a mapping whose domain set does not equal
	// its codomain set {1..n}; returned by New and FromImages. The wrapped
	// message names the two mismatched sets.
	ErrNotBijective = errors.New("perm: mapping is not a bijection")

	// ErrDomainMismatch indicates two permutations of different degree
	// passed to Compose.
	ErrDomainMismatch = errors.New("perm: permutations must be defined on the same set")
)
