package solvergrpc

import solver "github.com/branched-services/go-solver"

// Transport-specific wrapper types for the ledger RPC methods. These exist
// only at the gRPC serialization boundary; callers work with the root
// package's types.

// SubmitSolutionRequest wraps the parameter of Transport.SubmitSolution.
type SubmitSolutionRequest struct {
	Solution solver.Solution `cramberry:"1"`
}

// SubmitSolutionResponse wraps the return value of Transport.SubmitSolution.
type SubmitSolutionResponse struct {
	Receipt solver.Receipt `cramberry:"1"`
}

// QueryStateRequest wraps the parameters of Transport.QueryState.
type QueryStateRequest struct {
	Contract solver.ContentAddress `cramberry:"1"`
	Key      solver.Key            `cramberry:"2"`
}

// QueryStateResponse wraps the return value of Transport.QueryState.
type QueryStateResponse struct {
	Value []solver.Word `cramberry:"1"`
}
