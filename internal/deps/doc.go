// Package deps locates external programs and reports whether they can run.
//
// PathLocator takes its search directories as data so callers and tests
// control exactly where backends are discovered.
package deps
