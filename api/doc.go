// Package api exposes the simulator over HTTP.
//
// Routes:
//   - POST /api/simulate: run one simulation against a fixed board
//   - POST /api/optimize: search for the smallest square board meeting a coverage threshold
//   - GET  /health: liveness
//   - GET  /metrics: Prometheus metrics from the server's private registry
//
// Requests are JSON, validated with struct tags before reaching the sim package.
// Every response carries a run_id and the seed used, so a result can be
// reproduced by replaying the request with that seed.
package api
