// Package methods provides the Butler, Bowyer and Kew and the Halliwell and Sultan calculators.
//
// Both are stateless: Compute is a pure function of its input struct and is safe for concurrent
// use. The fixed constants in each formula belong to the published method and are not tunable.
package methods
