package solvergrpc

import (
	"context"
	"fmt"

	solver "github.com/branched-services/go-solver"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ solver.Transport = (*Client)(nil)

// Client implements solver.Transport against a remote ledger node over
// gRPC with cramberry serialization. Retry and timeout policy, if any,
// belongs to the dial options and call contexts; the client itself never
// retries.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote ledger node.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("solvergrpc: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

// SubmitSolution proposes a transition to the remote ledger.
func (c *Client) SubmitSolution(ctx context.Context, sol solver.Solution) (solver.Receipt, error) {
	req := &SubmitSolutionRequest{Solution: sol}
	resp := new(SubmitSolutionResponse)
	if err := c.cc.Invoke(ctx, fullMethod("SubmitSolution"), req, resp); err != nil {
		return solver.Receipt{}, err
	}
	return resp.Receipt, nil
}

// QueryState reads the words stored at key within the contract's state.
func (c *Client) QueryState(ctx context.Context, contract solver.ContentAddress, key solver.Key) ([]solver.Word, error) {
	req := &QueryStateRequest{Contract: contract, Key: key}
	resp := new(QueryStateResponse)
	if err := c.cc.Invoke(ctx, fullMethod("QueryState"), req, resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}
