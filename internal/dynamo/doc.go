// Package dynamo provides the core value types for synthetic linear systems.
//
// A discrete-time linear system evolves as
//
//	x[t+1] = A x[t]
//	y[t]   = C x[t]
//
// with an input matrix B reserved for driven experiments:
//
//   - [Mode]: one complex-conjugate eigenvalue pair, a·e^(iϕ), and its phase offset
//   - [System]: the matrices A, B, C together with the modal form they were built from
//   - [State]: a plain state vector used during propagation
//
// # Stability
//
// Every [Mode] has magnitude strictly below one, so the state matrix of a
// generated [System] is Schur-stable and repeated application of A decays:
//
//	sys, _ := modal.Generate(ctx, nil)
//	for _, m := range sys.Modes {
//	    _ = cmplx.Abs(m.Eigenvalue()) // < 1
//	}
package dynamo
