package solver

import "encoding/binary"

// SignatureWords is a signature decoded into the fixed triple layout that
// predicate signature checks expect: the two 4-word curve point parts and
// one recovery word.
type SignatureWords struct {
	R [4]Word
	S [4]Word
	V Word
}

// Words flattens the signature into its 9-word decision-variable layout.
func (s SignatureWords) Words() []Word {
	out := make([]Word, 0, 9)
	out = append(out, s.R[:]...)
	out = append(out, s.S[:]...)
	out = append(out, s.V)
	return out
}

// SignWords obtains the wallet's signature over data and decodes it into
// the word-triple layout. The caller owns data ordering: the vector must
// match the predicate's interface exactly, or the predicate rejects the
// signature downstream rather than failing here.
func SignWords(w Wallet, account string, data []Word) (SignatureWords, error) {
	sig, err := w.SignWords(account, data)
	if err != nil {
		return SignatureWords{}, err
	}
	return DecodeSignature(sig)
}

// DecodeSignature splits a 65-byte recoverable secp256k1 signature into
// R (4 words), S (4 words), and the recovery word V.
func DecodeSignature(sig Signature) (SignatureWords, error) {
	if sig.Scheme != SchemeSecp256k1 {
		return SignatureWords{}, &UnsupportedSchemeError{Scheme: sig.Scheme}
	}
	if len(sig.Bytes) != 65 {
		return SignatureWords{}, ErrInvalidSignature
	}
	var out SignatureWords
	for i := 0; i < 4; i++ {
		out.R[i] = Word(binary.BigEndian.Uint64(sig.Bytes[i*WordBytes:]))
		out.S[i] = Word(binary.BigEndian.Uint64(sig.Bytes[32+i*WordBytes:]))
	}
	out.V = Word(sig.Bytes[64])
	return out, nil
}
