package solvergrpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	solver "github.com/branched-services/go-solver"
	solvergrpc "github.com/branched-services/go-solver/grpc"
	"github.com/branched-services/go-solver/ledgertest"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// startServer starts a gRPC server on a random port and returns the
// listener address and a cleanup function.
func startServer(t *testing.T, gs *solvergrpc.Server) (string, func()) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := grpc.NewServer()
	gs.Register(s)

	go func() {
		if err := s.Serve(lis); err != nil {
			// Ignore errors from graceful stop.
		}
	}()

	return lis.Addr().String(), func() {
		s.GracefulStop()
	}
}

func dial(t *testing.T, addr string) *solvergrpc.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := solvergrpc.Dial(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	return client
}

func TestGRPC_CounterFlow(t *testing.T) {
	ledger := ledgertest.New()
	addr, cleanup := startServer(t, solvergrpc.NewServer(ledger))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	ctx := context.Background()
	pred := solver.PredicateAddress{
		Contract:  solver.ContentAddressOf([]byte("counter-contract")),
		Predicate: solver.ContentAddressOf([]byte("increment")),
	}

	counter := solver.NewCounter(client, pred)

	count, err := counter.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected fresh counter at 0, got %d", count)
	}

	for i := 1; i <= 3; i++ {
		got, err := counter.Increment(ctx)
		if err != nil {
			t.Fatalf("Increment %d: %v", i, err)
		}
		if got != solver.Word(i) {
			t.Fatalf("Increment %d: expected %d, got %d", i, i, got)
		}
	}

	count, err = counter.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 after three increments, got %d", count)
	}
}

func TestGRPC_TokenFlow(t *testing.T) {
	ledger := ledgertest.New()
	addr, cleanup := startServer(t, solvergrpc.NewServer(ledger))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	ctx := context.Background()

	wallet := solver.NewMemoryWallet()
	for _, name := range []string{"alice", "bob"} {
		if err := wallet.NewKeyPair(name, solver.SchemeSecp256k1); err != nil {
			t.Fatalf("NewKeyPair(%s): %v", name, err)
		}
	}

	tokenAddr := solver.ContentAddressOf([]byte("token-contract"))
	token := solver.NewToken(client, wallet, solver.TokenAddresses{
		Token:    tokenAddr,
		Mint:     solver.PredicateAddress{Contract: tokenAddr, Predicate: solver.ContentAddressOf([]byte("mint"))},
		Transfer: solver.PredicateAddress{Contract: tokenAddr, Predicate: solver.ContentAddressOf([]byte("transfer"))},
	})

	if _, err := token.Mint(ctx, "alice", 1000); err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := token.Transfer(ctx, "alice", "bob", 400); err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	alice, err := token.Balance(ctx, "alice")
	if err != nil {
		t.Fatalf("Balance(alice): %v", err)
	}
	bob, err := token.Balance(ctx, "bob")
	if err != nil {
		t.Fatalf("Balance(bob): %v", err)
	}
	if alice != 600 || bob != 400 {
		t.Fatalf("expected 600/400 after transfer, got %d/%d", alice, bob)
	}
}

func TestCramberryCodecRoundTrip(t *testing.T) {
	codec := solvergrpc.CramberryCodec{}

	in := &solvergrpc.QueryStateRequest{
		Contract: solver.ContentAddressOf([]byte("contract")),
		Key:      solver.Key{0, -7, 1 << 40},
	}

	data, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := new(solvergrpc.QueryStateRequest)
	if err := codec.Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if out.Contract != in.Contract {
		t.Error("expected contract address to round-trip")
	}
	if len(out.Key) != len(in.Key) {
		t.Fatalf("expected key length %d, got %d", len(in.Key), len(out.Key))
	}
	for i := range in.Key {
		if out.Key[i] != in.Key[i] {
			t.Errorf("key word %d: expected %d, got %d", i, in.Key[i], out.Key[i])
		}
	}
}
