// Package search drives the depth iteration around the encoder: encode
// at depth D, solve, and either return the reconstructed formula or move
// on to D+1. Because depths are tried in increasing order, the first SAT
// answer is a formula of minimal syntactic depth for the samples.
//
// The encoder itself never retries; all policy — depth bounds, verbosity,
// cancellation — lives here.
package search
