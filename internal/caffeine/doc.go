// Package caffeine implements the pharmacokinetic core of the planner: sensitivity
// derivation, the first-order decay model, the predictors built on it, the schedule
// constraint validator and the greedy schedule optimizer.
//
// Every function in this package is pure and synchronous. Callers own the slices they
// pass in; nothing here mutates or retains them.
package caffeine
