package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrEmptySolution indicates a solution with no predicate data was submitted.
	ErrEmptySolution = errors.New("solver: solution contains no predicate data")

	// ErrInvalidSignature indicates a signature that is not in the expected
	// 65-byte recoverable form.
	ErrInvalidSignature = errors.New("solver: signature is not 65 bytes")
)

// AccountNotFoundError indicates the wallet holds no key for the account.
type AccountNotFoundError struct {
	Account string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("solver: account %q not found in wallet", e.Account)
}

// UnsupportedSchemeError indicates a key or signature of a scheme this
// client cannot handle.
type UnsupportedSchemeError struct {
	Scheme Scheme
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("solver: unsupported signature scheme %s", e.Scheme)
}

// MalformedStateError indicates a scalar slot holding more than one word.
// The stored shape violates the zero-or-one-word convention and the current
// operation must fail rather than guess.
type MalformedStateError struct {
	Key   Key
	Value []Word
}

func (e *MalformedStateError) Error() string {
	return fmt.Sprintf("solver: expected zero or one word at key %v, got %d", e.Key, len(e.Value))
}

// FieldNotFoundError indicates the schema declares no field with the name.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("solver: schema has no field %q", e.Field)
}

// FieldKindError indicates a scalar field used as a map or vice versa.
type FieldKindError struct {
	Field   string
	WantMap bool
}

func (e *FieldKindError) Error() string {
	if e.WantMap {
		return fmt.Sprintf("solver: field %q is not a map", e.Field)
	}
	return fmt.Sprintf("solver: field %q is not a scalar", e.Field)
}

// StageError wraps a collaborator failure with the pipeline stage it
// occurred in, so callers can tell "ledger unreachable" from
// "authorization failed" from "unexpected stored shape".
type StageError struct {
	Stage string // "resolve", "read", "sign", or "submit"
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("solver: %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
