// Package records normalizes historical audit rows and partitions them into
// material-category and service-category subsets consumed by experience ranking.
package records
