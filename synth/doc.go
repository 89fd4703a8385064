// Package synth generates reproducible synthetic matrices for exercising the
// vpca solvers: orthonormal factors, low-rank matrices, sparse corruptions
// and their superpositions.
//
// Every generator is deterministic for a fixed seed:
//
//	C, A, B, err := synth.Corrupted(30, 30, 2,
//	    synth.WithSeed(7),
//	    synth.WithDensity(0.05),  // 5 % of entries corrupted
//	    synth.WithMagnitude(5),   // |A_ij| = 5 on the support
//	)
//	// C = A + B, A sparse, B rank 2
//
// Low-rank parts are built as U·diag(σ)·Vᵀ from Gaussian matrices
// orthonormalized by a QR factorization, so σ are the exact singular values.
//
// Options follow the package contract: constructors panic on meaningless
// values, generators return sentinel errors and never panic.
package synth
