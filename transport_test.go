package solver

import (
	"context"
	"fmt"
)

// memLedger is a minimal in-process Transport for the tests in this
// package. It applies every mutation of a submitted solution immediately,
// without predicate checking. The exported ledgertest package offers the
// full-featured equivalent; it can't be used here because it imports this
// package.
type memLedger struct {
	state  map[string][]Word
	submit func(Solution) error // optional intercept, called before applying
}

func newMemLedger() *memLedger {
	return &memLedger{state: make(map[string][]Word)}
}

func (l *memLedger) slot(contract ContentAddress, key Key) string {
	return fmt.Sprintf("%s/%v", contract, key)
}

func (l *memLedger) set(contract ContentAddress, key Key, value []Word) {
	l.state[l.slot(contract, key)] = value
}

func (l *memLedger) SubmitSolution(_ context.Context, sol Solution) (Receipt, error) {
	if l.submit != nil {
		if err := l.submit(sol); err != nil {
			return Receipt{}, err
		}
	}
	for _, data := range sol.Data {
		for _, m := range data.StateMutations {
			l.set(data.PredicateToSolve.Contract, m.Key, m.Value)
		}
	}
	return Receipt{Solution: ContentAddressOf([]byte("accepted"))}, nil
}

func (l *memLedger) QueryState(_ context.Context, contract ContentAddress, key Key) ([]Word, error) {
	return l.state[l.slot(contract, key)], nil
}

// scriptedTransport returns canned query results, for reader policy tests.
type scriptedTransport struct {
	value []Word
	err   error
}

func (s *scriptedTransport) SubmitSolution(context.Context, Solution) (Receipt, error) {
	return Receipt{}, s.err
}

func (s *scriptedTransport) QueryState(context.Context, ContentAddress, Key) ([]Word, error) {
	return s.value, s.err
}

// recordingWallet wraps a Wallet and records the word vectors it is asked
// to sign, for data-ordering assertions.
type recordingWallet struct {
	Wallet
	signed [][]Word
}

func (w *recordingWallet) SignWords(account string, data []Word) (Signature, error) {
	w.signed = append(w.signed, append([]Word(nil), data...))
	return w.Wallet.SignWords(account, data)
}

// fixedSchemeWallet reports every account as holding a key of the given
// scheme, for unsupported-scheme tests.
type fixedSchemeWallet struct {
	scheme Scheme
}

func (w *fixedSchemeWallet) PublicKey(string) (PublicKey, error) {
	return PublicKey{Scheme: w.scheme, Bytes: make([]byte, 33)}, nil
}

func (w *fixedSchemeWallet) SignWords(string, []Word) (Signature, error) {
	return Signature{Scheme: w.scheme, Bytes: make([]byte, 65)}, nil
}

func testAddress(seed string) ContentAddress {
	return ContentAddressOf([]byte(seed))
}

func testPredicate(contract, predicate string) PredicateAddress {
	return PredicateAddress{
		Contract:  testAddress(contract),
		Predicate: testAddress(predicate),
	}
}
