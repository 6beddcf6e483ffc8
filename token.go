package solver

import (
	"context"

	"github.com/inconshreveable/log15"
)

// TokenSchema is the storage layout of the token contract: one map field
// from hashed account key to balance.
func TokenSchema() *Schema {
	return NewSchema(Field{Name: "balances", Index: 0, IsMap: true})
}

// TokenAddresses collects the deployed token contract and its predicates.
type TokenAddresses struct {
	Token    ContentAddress
	Mint     PredicateAddress
	Transfer PredicateAddress
}

// Token proposes mint and transfer transitions against a token contract's
// balances map.
//
// Every operation re-reads the balances it depends on; nothing is cached
// across calls. The read-then-compute-then-propose pipeline is not
// transactional, and concurrent callers are not serialized: two mints for
// the same account can both read the same prior balance and propose
// conflicting post-mint values. Arbitrating that race is the ledger's job.
type Token struct {
	transport Transport
	wallet    Wallet
	reader    *StateReader
	addresses TokenAddresses
	schema    *Schema
	log       log15.Logger
}

// NewToken creates a token app over the given transport and wallet.
func NewToken(t Transport, w Wallet, addresses TokenAddresses, opts ...Option) *Token {
	cfg := defaultConfig(TokenSchema())
	for _, opt := range opts {
		opt(cfg)
	}
	return &Token{
		transport: t,
		wallet:    w,
		reader:    NewStateReader(t, addresses.Token),
		addresses: addresses,
		schema:    cfg.schema,
		log:       cfg.log,
	}
}

// Balance reads the current balance of the named account. An account never
// minted to or transferred to reads as 0.
func (t *Token) Balance(ctx context.Context, account string) (Word, error) {
	id, err := ResolveAccount(t.wallet, account)
	if err != nil {
		return 0, &StageError{Stage: "resolve", Err: err}
	}
	return t.BalanceOf(ctx, id)
}

// BalanceOf reads the current balance of a resolved account.
func (t *Token) BalanceOf(ctx context.Context, id AccountID) (Word, error) {
	key, err := t.schema.MapEntryKey("balances", id.Words()...)
	if err != nil {
		return 0, err
	}
	balance, err := t.reader.ReadScalar(ctx, key)
	if err != nil {
		return 0, &StageError{Stage: "read", Err: err}
	}
	return balance, nil
}

// MintSolution is the pure build step of Mint: decision variables
// {to, amount, signature} and one mutation setting to's balance entry to
// newBalance. sig must authorize exactly to ++ [amount].
func (t *Token) MintSolution(to AccountID, amount, newBalance Word, sig SignatureWords) (Solution, error) {
	key, err := t.schema.MapEntryKey("balances", to.Words()...)
	if err != nil {
		return Solution{}, err
	}

	vars := make([]Word, 0, 14)
	vars = append(vars, to.Words()...)
	vars = append(vars, amount)
	vars = append(vars, sig.Words()...)

	sol := NewSolution().
		Solve(t.addresses.Mint, vars, Mutation{Key: key, Value: []Word{newBalance}}).
		Build()
	return sol, nil
}

// Mint proposes minting amount tokens to the named account: resolve the
// destination, read its balance, authorize to ++ [amount], and submit a
// solution setting the balance to current + amount.
func (t *Token) Mint(ctx context.Context, to string, amount Word) (Receipt, error) {
	toID, err := ResolveAccount(t.wallet, to)
	if err != nil {
		return Receipt{}, &StageError{Stage: "resolve", Err: err}
	}

	current, err := t.BalanceOf(ctx, toID)
	if err != nil {
		return Receipt{}, err
	}

	// The signed vector is exactly to(4) ++ amount(1); the mint predicate
	// verifies this exact ordering.
	data := append(toID.Words(), amount)
	sig, err := SignWords(t.wallet, to, data)
	if err != nil {
		return Receipt{}, &StageError{Stage: "sign", Err: err}
	}

	sol, err := t.MintSolution(toID, amount, current+amount, sig)
	if err != nil {
		return Receipt{}, err
	}

	t.log.Debug("submitting mint", "to", to, "amount", amount, "proposed", current+amount)
	receipt, err := t.transport.SubmitSolution(ctx, sol)
	if err != nil {
		return Receipt{}, &StageError{Stage: "submit", Err: err}
	}
	return receipt, nil
}

// TransferSolution is the pure build step of Transfer: decision variables
// {from, to, amount, signature} and two mutations, one per balance entry.
// sig must authorize exactly from ++ to ++ [amount].
func (t *Token) TransferSolution(from, to AccountID, amount, newFrom, newTo Word, sig SignatureWords) (Solution, error) {
	fromKey, err := t.schema.MapEntryKey("balances", from.Words()...)
	if err != nil {
		return Solution{}, err
	}
	toKey, err := t.schema.MapEntryKey("balances", to.Words()...)
	if err != nil {
		return Solution{}, err
	}

	vars := make([]Word, 0, 18)
	vars = append(vars, from.Words()...)
	vars = append(vars, to.Words()...)
	vars = append(vars, amount)
	vars = append(vars, sig.Words()...)

	sol := NewSolution().
		Solve(t.addresses.Transfer, vars,
			Mutation{Key: fromKey, Value: []Word{newFrom}},
			Mutation{Key: toKey, Value: []Word{newTo}},
		).
		Build()
	return sol, nil
}

// Transfer proposes moving amount tokens between the named accounts:
// resolve both, read both balances, authorize from ++ to ++ [amount] with
// the sender's key, and submit a solution proposing from-amount and
// to+amount.
//
// No sufficient-funds check happens here. The proposed sender balance may
// go negative from this client's view; enforcing funds is the transfer
// predicate's responsibility.
func (t *Token) Transfer(ctx context.Context, from, to string, amount Word) (Receipt, error) {
	fromID, err := ResolveAccount(t.wallet, from)
	if err != nil {
		return Receipt{}, &StageError{Stage: "resolve", Err: err}
	}
	toID, err := ResolveAccount(t.wallet, to)
	if err != nil {
		return Receipt{}, &StageError{Stage: "resolve", Err: err}
	}

	currentFrom, err := t.BalanceOf(ctx, fromID)
	if err != nil {
		return Receipt{}, err
	}
	currentTo, err := t.BalanceOf(ctx, toID)
	if err != nil {
		return Receipt{}, err
	}

	// The signed vector is exactly from(4) ++ to(4) ++ amount(1).
	data := make([]Word, 0, 9)
	data = append(data, fromID.Words()...)
	data = append(data, toID.Words()...)
	data = append(data, amount)
	sig, err := SignWords(t.wallet, from, data)
	if err != nil {
		return Receipt{}, &StageError{Stage: "sign", Err: err}
	}

	sol, err := t.TransferSolution(fromID, toID, amount, currentFrom-amount, currentTo+amount, sig)
	if err != nil {
		return Receipt{}, err
	}

	t.log.Debug("submitting transfer",
		"from", from, "to", to, "amount", amount,
		"proposedFrom", currentFrom-amount, "proposedTo", currentTo+amount)
	receipt, err := t.transport.SubmitSolution(ctx, sol)
	if err != nil {
		return Receipt{}, &StageError{Stage: "submit", Err: err}
	}
	return receipt, nil
}
