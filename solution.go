package solver

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
)

// ContentAddress is the hash-derived identifier of an immutable artifact
// (a deployed contract or one of its predicates).
type ContentAddress [32]byte

// ContentAddressOf hashes an artifact's canonical encoding.
func ContentAddressOf(data []byte) ContentAddress {
	var a ContentAddress
	copy(a[:], crypto.Keccak256(data))
	return a
}

// String returns the hex form of the address.
func (a ContentAddress) String() string {
	return hex.EncodeToString(a[:])
}

// PredicateAddress identifies exactly one predicate within one deployed
// contract. Both parts are content addresses and immutable once deployed.
type PredicateAddress struct {
	Contract  ContentAddress `cramberry:"1"`
	Predicate ContentAddress `cramberry:"2"`
}

// Mutation proposes a new value for one storage slot. Order of mutations
// within a solution carries no execution-order guarantee beyond what the
// predicate itself checks.
type Mutation struct {
	Key   Key    `cramberry:"1"`
	Value []Word `cramberry:"2"`
}

// SolutionData is one predicate invocation: the predicate to solve, the
// decision variables it checks, and the state mutations it permits.
// TransientData carries ephemeral cross-predicate values in the wider
// protocol and stays empty in the flows this library builds.
type SolutionData struct {
	PredicateToSolve  PredicateAddress `cramberry:"1"`
	DecisionVariables []Word           `cramberry:"2"`
	TransientData     []Word           `cramberry:"3"`
	StateMutations    []Mutation       `cramberry:"4"`
}

// Solution is a complete transition proposal, submitted atomically.
type Solution struct {
	Data []SolutionData `cramberry:"1"`
}

// SolutionBuilder accumulates predicate invocations into a Solution.
// Builders are single-use; Build returns the accumulated value.
type SolutionBuilder struct {
	data []SolutionData
}

// NewSolution creates an empty solution builder.
func NewSolution() *SolutionBuilder {
	return &SolutionBuilder{data: make([]SolutionData, 0, 1)}
}

// Solve adds one predicate invocation with its decision variables and
// proposed mutations. It returns the builder for chaining.
func (b *SolutionBuilder) Solve(pred PredicateAddress, vars []Word, mutations ...Mutation) *SolutionBuilder {
	b.data = append(b.data, SolutionData{
		PredicateToSolve:  pred,
		DecisionVariables: vars,
		StateMutations:    mutations,
	})
	return b
}

// Build returns the assembled solution.
func (b *SolutionBuilder) Build() Solution {
	return Solution{Data: b.data}
}
