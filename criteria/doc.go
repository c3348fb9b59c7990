// Package criteria compiles per-attribute filters into one bun WHERE predicate
// shared by the fetch and count queries of a criteria search.
package criteria
