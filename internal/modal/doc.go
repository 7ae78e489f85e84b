// Package modal synthesizes random, Schur-stable, oscillatory discrete-time
// linear systems.
//
// A system is built in modal form and then hidden behind a random basis:
//
//  1. N/2 magnitudes a_k = 1 - 0.2^t_k with t_k spaced over [3, 5]
//  2. N/2 frequencies ϕ_k log-spaced over [0.01, 1], shuffled
//  3. N/2 phase offsets δ_k in [0, 2), used only for diagnostics
//  4. Λ = blockdiag([[Re λ_k, Im λ_k], [-Im λ_k, Re λ_k]]) with λ_k = a_k e^(iϕ_k)
//  5. A = Qᵀ Λ Q for a Haar-random orthogonal Q
//  6. C uniform on [0,1), B standard normal
//
// All draws come from one generator seeded by the config, so
//
//	sys1, _ := modal.Generate(ctx, nil)
//	sys2, _ := modal.Generate(ctx, nil)
//
// yield identical matrices. Passing a [viz.Renderer] adds diagnostic output
// without changing what is returned.
package modal
