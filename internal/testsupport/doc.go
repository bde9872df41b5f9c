// Package testsupport builds throwaway configurations, stub backends, and
// media files for package tests.
package testsupport
