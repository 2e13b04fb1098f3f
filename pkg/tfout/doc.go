// Package tfout turns raw provisioning output into display-ready strings.
//
// Infrastructure runs produce three awkward shapes of data: free-form
// console logs full of terminal escape codes, JSON-ish state and output
// blobs, and provider or validation error payloads of no fixed schema.
// This package normalizes all of them into two products: a clean text/JSON
// rendering for display (FormatOutput) and a single human-readable error
// summary (ExtractErrorMessage).
//
// Every entry point is a pure, synchronous function over its inputs. None
// of them ever return an error or panic; malformed or unexpected input
// degrades to a defined placeholder string so callers can always render
// something.
package tfout
