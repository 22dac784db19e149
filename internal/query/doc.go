// Package query derives views and summary figures from a task list.
//
// Every function here is pure: inputs are never modified and results are
// freshly allocated, so callers may hold a store snapshot and a derived view
// at the same time.
package query
