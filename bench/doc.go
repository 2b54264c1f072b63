// Package bench measures the running time of package thorup against
// dijkstraref, trimmed from the original measurement harness down to an
// idiomatic Go shape: no interactive console input, no LaTeX table
// dumping, no customizable step hooks. Plain go test -bench functions
// cover the per-algorithm micro-benchmarks; RepeatedQuerySeries covers
// the end-to-end scenario where Thorup's one-time setup cost is
// amortized over many queries against the same graph.
package bench
