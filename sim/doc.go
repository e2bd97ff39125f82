// Package sim provides the Monte Carlo dispersion model behind the dart-board
// sizing tool.
//
// # Reading Guide
//
// Data flows one way: skill → dispersion → shots → classification → counts.
//   - dispersion.go: skill-to-sigma mapping (linear, clamped to [0, 10])
//   - sampler.go: independent per-axis Gaussian shots from an injected NormalSource
//   - classifier.go: target → board → miss decision, boundaries inclusive
//   - runner.go: Run, one simulation aggregated into a SimulationResult
//   - optimizer.go: Optimize and CoverageCurve, square-board sweeps over one fixed sample
//
// # Reproducibility
//
// The package never touches global random state. Every sampling call takes a
// NormalSource; PartitionedRNG (rng.go) derives isolated, seeded streams so a
// single --seed reproduces both a run and an optimization.
//
// # Sub-packages
//   - sim/stats/: grouping statistics (CEP, radial spread) over a SimulationResult
//   - sim/scenario/: strict YAML scenario loading and validation
//
// Invalid input fails with an error wrapping ErrInvalidArgument before any
// random draw is made.
package sim
