// Package lint runs a batch lint: it loads every schema under a schema
// directory, validates every document under a document directory against
// the schema registered for the document's default namespace, and writes
// the optional JSON report.
//
// The three caller paths are checked before any file is read. Per-file
// problems never stop a run; they are recorded in the returned
// [validator.Result] in walk order. Use [report.Verdict] on the result to
// decide the outcome.
package lint
