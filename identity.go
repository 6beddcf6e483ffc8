package solver

// AccountID is the canonical 4-word account identifier: the hash of the
// account's word-encoded public key. Identity is determined by the key, not
// the account name; two names holding the same key resolve to the same ID.
type AccountID [4]Word

// Words returns the ID as a word slice, for key derivation and
// decision-variable packing.
func (id AccountID) Words() []Word {
	return []Word{id[0], id[1], id[2], id[3]}
}

// ResolveAccount maps an account name to its AccountID: wallet lookup,
// canonical public-key encoding, hash, pack. It is a pure function of
// wallet state and resolves identically for an unchanged wallet.
func ResolveAccount(w Wallet, account string) (AccountID, error) {
	pub, err := w.PublicKey(account)
	if err != nil {
		return AccountID{}, err
	}
	if pub.Scheme != SchemeSecp256k1 {
		return AccountID{}, &UnsupportedSchemeError{Scheme: pub.Scheme}
	}
	return AccountID(Word4FromHash(HashWords(BytesToWords(pub.Bytes)))), nil
}
