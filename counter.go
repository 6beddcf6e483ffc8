package solver

import (
	"context"

	"github.com/inconshreveable/log15"
)

// CounterSchema is the storage layout of the counter contract: one scalar
// field holding the count.
func CounterSchema() *Schema {
	return NewSchema(Field{Name: "counter", Index: 0})
}

// Counter proposes increments to a counter contract's single scalar slot.
// The increment predicate requires no authorization, so solutions carry
// empty decision variables.
//
// Increment is read-then-compute-then-propose and not transactional:
// concurrent callers can read the same prior count and propose the same new
// value, and the ledger arbitrates which proposal lands.
type Counter struct {
	transport Transport
	reader    *StateReader
	address   PredicateAddress
	schema    *Schema
	log       log15.Logger
}

// NewCounter creates a counter app over the given transport, solving the
// increment predicate at address.
func NewCounter(t Transport, address PredicateAddress, opts ...Option) *Counter {
	cfg := defaultConfig(CounterSchema())
	for _, opt := range opts {
		opt(cfg)
	}
	return &Counter{
		transport: t,
		reader:    NewStateReader(t, address.Contract),
		address:   address,
		schema:    cfg.schema,
		log:       cfg.log,
	}
}

// Count reads the current counter value. A never-incremented counter
// reads as 0.
func (c *Counter) Count(ctx context.Context) (Word, error) {
	key, err := c.schema.ScalarKey("counter")
	if err != nil {
		return 0, err
	}
	count, err := c.reader.ReadScalar(ctx, key)
	if err != nil {
		return 0, &StageError{Stage: "read", Err: err}
	}
	return count, nil
}

// IncrementSolution is the pure build step of Increment: one mutation
// setting the counter slot to newCount, with empty decision variables.
func (c *Counter) IncrementSolution(newCount Word) (Solution, error) {
	key, err := c.schema.ScalarKey("counter")
	if err != nil {
		return Solution{}, err
	}
	sol := NewSolution().
		Solve(c.address, nil, Mutation{Key: key, Value: []Word{newCount}}).
		Build()
	return sol, nil
}

// Increment reads the current count, proposes current+1, and submits the
// solution. It returns the proposed new count.
func (c *Counter) Increment(ctx context.Context) (Word, error) {
	current, err := c.Count(ctx)
	if err != nil {
		return 0, err
	}
	newCount := current + 1

	sol, err := c.IncrementSolution(newCount)
	if err != nil {
		return 0, err
	}

	c.log.Debug("submitting increment", "current", current, "proposed", newCount)
	if _, err := c.transport.SubmitSolution(ctx, sol); err != nil {
		return 0, &StageError{Stage: "submit", Err: err}
	}
	return newCount, nil
}
