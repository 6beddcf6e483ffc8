package solver

import "context"

// StateReader reads one contract's state through a Transport, applying the
// scalar-shape convention uniformly: an empty result is the zero value of a
// never-initialized slot, a single word is the value, and anything longer
// is malformed and fatal to the current operation.
type StateReader struct {
	transport Transport
	contract  ContentAddress
}

// NewStateReader creates a reader over one contract's state.
func NewStateReader(t Transport, contract ContentAddress) *StateReader {
	return &StateReader{transport: t, contract: contract}
}

// Contract returns the contract whose state is read.
func (r *StateReader) Contract() ContentAddress {
	return r.contract
}

// Read returns the raw word sequence stored at key.
func (r *StateReader) Read(ctx context.Context, key Key) ([]Word, error) {
	return r.transport.QueryState(ctx, r.contract, key)
}

// ReadScalar reads key as a scalar slot. It never takes the first element
// of a longer sequence; a slot of length two or more fails with
// MalformedStateError.
func (r *StateReader) ReadScalar(ctx context.Context, key Key) (Word, error) {
	value, err := r.Read(ctx, key)
	if err != nil {
		return 0, err
	}
	switch len(value) {
	case 0:
		return 0, nil
	case 1:
		return value[0], nil
	default:
		return 0, &MalformedStateError{Key: key, Value: value}
	}
}
