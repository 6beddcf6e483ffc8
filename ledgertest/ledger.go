// Package ledgertest provides an in-memory ledger for tests, examples, and
// local development.
//
// The ledger applies every mutation of a submitted solution immediately and
// atomically, without running any predicate. Constraint checking can be
// simulated through the Validate hook. It implements solver.Transport and
// can be served remotely through solvergrpc.NewServer.
package ledgertest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/blockberries/cramberry/pkg/cramberry"
	solver "github.com/branched-services/go-solver"
)

// Compile-time interface check.
var _ solver.Transport = (*Ledger)(nil)

// Ledger is an in-memory key/value ledger. Safe for concurrent use; tests
// commonly share one instance between a gRPC server goroutine and clients.
type Ledger struct {
	mu    sync.Mutex
	state map[string][]solver.Word

	// Validate, if set, is consulted before a solution is applied.
	// Returning an error rejects the whole proposal and leaves state
	// untouched, standing in for predicate constraint checking.
	Validate func(solver.Solution) error
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{state: make(map[string][]solver.Word)}
}

// SetState seeds a storage slot directly, bypassing solution intake.
func (l *Ledger) SetState(contract solver.ContentAddress, key solver.Key, value []solver.Word) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state[slotID(contract, key)] = append([]solver.Word(nil), value...)
}

// SubmitSolution validates and applies a proposal. All mutations of all
// solution data apply atomically; the receipt carries the solution's
// content address over its canonical cramberry encoding.
func (l *Ledger) SubmitSolution(_ context.Context, sol solver.Solution) (solver.Receipt, error) {
	if len(sol.Data) == 0 {
		return solver.Receipt{}, solver.ErrEmptySolution
	}
	if l.Validate != nil {
		if err := l.Validate(sol); err != nil {
			return solver.Receipt{}, err
		}
	}

	encoded, err := cramberry.Marshal(&sol)
	if err != nil {
		return solver.Receipt{}, fmt.Errorf("ledgertest: encode solution: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, data := range sol.Data {
		contract := data.PredicateToSolve.Contract
		for _, m := range data.StateMutations {
			l.state[slotID(contract, m.Key)] = append([]solver.Word(nil), m.Value...)
		}
	}

	return solver.Receipt{Solution: solver.ContentAddressOf(encoded)}, nil
}

// QueryState returns the words stored at key. Never-written slots read as
// an empty sequence.
func (l *Ledger) QueryState(_ context.Context, contract solver.ContentAddress, key solver.Key) ([]solver.Word, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	value, ok := l.state[slotID(contract, key)]
	if !ok {
		return nil, nil
	}
	return append([]solver.Word(nil), value...), nil
}

// slotID flattens a (contract, key) pair into a map key.
func slotID(contract solver.ContentAddress, key solver.Key) string {
	var b strings.Builder
	b.WriteString(contract.String())
	for _, w := range key {
		fmt.Fprintf(&b, "/%d", w)
	}
	return b.String()
}
