// Package generate publishes rendered API pages into an output directory.
//
// A run renders every module of a model document plus the index page before
// touching the filesystem. A render failure leaves the output directory
// unchanged. Pages are written atomically and skipped when their
// content fingerprint is unchanged.
package generate
