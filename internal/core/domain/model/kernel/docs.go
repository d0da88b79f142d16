// Package kernel contains shared value objects used across the domain model:
// entity identifiers and monetary amounts. These types carry their own
// validation so aggregates can rely on them being well-formed once
// constructed.
package kernel
