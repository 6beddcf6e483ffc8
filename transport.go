package solver

import "context"

// Receipt acknowledges an accepted submission. The ledger identifies the
// pending solution by its content address.
type Receipt struct {
	Solution ContentAddress `cramberry:"1"`
}

// Transport is the external submission and query collaborator. Network
// concerns (addressing, TLS, retries, timeouts) belong entirely to the
// implementation; this client core never retries.
type Transport interface {
	// SubmitSolution proposes a transition. Acceptance of the receipt does
	// not mean the mutations applied, only that the ledger took the proposal.
	SubmitSolution(ctx context.Context, sol Solution) (Receipt, error)

	// QueryState reads the word sequence stored at key within the contract's
	// state. A slot that was never written reads as an empty sequence.
	QueryState(ctx context.Context, contract ContentAddress, key Key) ([]Word, error)
}
