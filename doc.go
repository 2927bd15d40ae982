// Package cliquetabu implements a tabu-enhanced multi-start local search
// heuristic for the Maximum Clique problem.
//
// The search maintains a candidate-ordered permutation of the vertex set
// (package clique) rather than recomputing candidate sets from scratch on
// every move, seeds each restart with either a randomized greedy heuristic
// or a DSATUR-coloring-guided heuristic (package heuristic, backed by
// package coloring), and escapes local optima with three neighborhood
// moves gated by a short-term tabu memory (package tabu) before falling
// back to perturbation.
//
// Subpackages:
//
//	graph/            — the dense, 0-based adjacency-set graph representation
//	clique/           — the QCO candidate-ordering state machine and its moves
//	internal/recency/ — the bounded insertion-ordered set backing the tabu memory
//	internal/tabu/    — the two-window tabu memory itself
//	internal/rngutil/ — seeded per-restart random-stream derivation
//	coloring/         — DSATUR graph coloring, used to seed the search
//	heuristic/        — initial-clique construction (random-greedy, saturation-guided)
//	search/           — the outer multi-restart driver and its tunable Options
//	dimacs/           — reads the DIMACS .clq benchmark format
//	graphgen/         — synthetic graph generators for tests and ad-hoc benchmarking
//	report/           — the CSV/console report format written by cmd/cliquetabu
//	cmd/cliquetabu/   — the CLI entry point
package cliquetabu
