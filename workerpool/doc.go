// Package workerpool runs a request's independent step-variant searches
// concurrently under a single cancellation token, bounded by a
// concurrency limit, and merges their individually-sorted outputs into
// one globally length-ordered stream.
package workerpool
