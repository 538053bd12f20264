// Package colmem provides the memory layer of a columnar engine.
//
// It combines three building blocks, each in its own package:
//
//   - buffer: bounds-checked views over contiguous byte regions with typed
//     access, zero-copy slicing and a cached hash.
//   - segment: growable, null-aware column segments with pluggable growth
//     and shared memory accounting.
//   - compress: LZ4 and Zstandard frames for sealed column data.
//
// This package ties them together in a Group: a set of named columns that
// share one Status, one memory budget, one logger and one metrics collector.
//
// # Quick Start
//
//	g := colmem.NewGroup(colmem.WithMemoryLimit(64 << 20))
//
//	ids, _ := colmem.AddColumn[int64](g, "id")
//	names, _ := g.AddVariableWidth("name")
//
//	_ = ids.Append(1)
//	_ = names.AppendString("ada")
//
//	if g.OverBudget() {
//	    // spill, flush or reject further input
//	}
//
// # Memory Accounting
//
// Every segment reports the change in its retained size to the group's
// Status, so Group.MemoryUsed is the sum across all columns. With a memory
// limit configured, growth that would exceed it fails with
// ErrMemoryLimitExceeded and the failed append leaves the column unchanged.
//
// # Logging and Metrics
//
// Logging uses log/slog through the Logger wrapper; the default logger
// discards everything. Growth and compression events are reported to a
// MetricsCollector (NoopMetricsCollector by default).
//
// # Concurrency
//
// A Group and its columns have a single writer. Readers are safe once
// appends have stopped.
package colmem
