// Package schema builds the namespace-indexed schema registry used by a
// lint run.
//
// A [Builder] walks a directory for *.xsd files, reads each file's
// targetNamespace from its root element and compiles it. Files without a
// target namespace are skipped. When two files declare the same namespace
// the later one in walk order replaces the earlier one; a notice is printed
// and logged but the run outcome is unaffected.
//
// The [Registry] is written by a single goroutine while the build replays
// per-file outcomes in walk order, and is read-only afterwards, so it can
// be shared by concurrent document validations.
package schema
