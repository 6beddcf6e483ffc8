// Package solver provides a Go client for constructing solutions to
// predicate-gated ledgers.
//
// A predicate ledger holds key/value state that can only change when a
// submitted solution satisfies a deployed predicate's constraints. This
// library builds those solutions: it derives canonical storage keys from a
// contract's declared schema, reads prior state through a transport, computes
// proposed values, signs exactly the word vector a predicate verifies, and
// packs everything into a submittable Solution.
//
// # Basic Usage
//
// Create a transport, a wallet, and an app wrapper, then propose transitions:
//
//	transport, err := solvergrpc.Dial(ctx, "127.0.0.1:9944",
//	    grpc.WithTransportCredentials(insecure.NewCredentials()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	wallet := solver.NewMemoryWallet()
//	if err := wallet.NewKeyPair("alice", solver.SchemeSecp256k1); err != nil {
//	    log.Fatal(err)
//	}
//
//	token := solver.NewToken(transport, wallet, addresses)
//
//	// Read, compute, sign, and submit in one call.
//	receipt, err := token.Mint(ctx, "alice", 100_000)
//
// # Words and Keys
//
// All ledger data is a sequence of fixed-width Words. Storage keys are word
// sequences derived from a Schema that mirrors the deployed contract's
// storage declaration: scalars map to their field index, map entries to the
// field index followed by the entry's identifying words. Key derivation is
// centralized in Schema so call sites never hand-build keys.
//
// # Solutions
//
// A Solution bundles one or more predicate invocations, each carrying the
// decision variables the predicate checks and the state mutations it permits.
// Solutions are proposals: the ledger applies the mutations only after the
// predicate accepts them. Building a solution is a read-then-compute-then-
// propose pipeline and is not transactional; a competing proposal can land
// between the read and acceptance, and arbitration of that race belongs to
// the ledger, not this client. Concurrent callers of the same transition are
// likewise not serialized here.
//
// # Collaborators
//
// The network transport (Transport), the signing wallet (Wallet), and the
// predicate execution engine are external. This module ships a gRPC transport
// in the grpc subpackage and an in-memory ledger in ledgertest for tests and
// local development.
package solver
