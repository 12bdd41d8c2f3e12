// Package sim orchestrates the Monte Carlo design-space exploration.
//
// The pipeline runs in four stages, each consuming the previous stage's
// table and returning an extended copy:
//
//   - [SampleDesignSpace]: seeded uniform draw of design parameter vectors
//   - [Evaluate] / [EvaluateParallel]: physics proxies over the whole batch
//   - [ComputeSweetScore]: batch-relative weighted speed/comfort score
//   - [TopDesigns]: stable descending top-N projection
//
// Rows are independent everywhere except scoring, which normalizes against
// the batch-wide min/max of v_exit and shock_proxy. [Describe] produces the
// summary statistics shown by the CLI report.
package sim
