package solvergrpc

import (
	"context"

	solver "github.com/branched-services/go-solver"

	"google.golang.org/grpc"
)

// Compile-time interface check.
var _ LedgerServiceServer = (*Server)(nil)

// Server exposes any solver.Transport implementation (typically a ledger
// node's intake, or ledgertest.Ledger in tests) as the ledger gRPC service.
type Server struct {
	transport solver.Transport
}

// NewServer wraps a transport for serving.
func NewServer(t solver.Transport) *Server {
	return &Server{transport: t}
}

// Register registers the service on a gRPC server.
func (s *Server) Register(gs *grpc.Server) {
	RegisterLedgerServiceServer(gs, s)
}

func (s *Server) SubmitSolution(ctx context.Context, req *SubmitSolutionRequest) (*SubmitSolutionResponse, error) {
	receipt, err := s.transport.SubmitSolution(ctx, req.Solution)
	if err != nil {
		return nil, err
	}
	return &SubmitSolutionResponse{Receipt: receipt}, nil
}

func (s *Server) QueryState(ctx context.Context, req *QueryStateRequest) (*QueryStateResponse, error) {
	value, err := s.transport.QueryState(ctx, req.Contract, req.Key)
	if err != nil {
		return nil, err
	}
	return &QueryStateResponse{Value: value}, nil
}
