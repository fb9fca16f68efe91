// Package validator holds the records produced by a lint run and the
// per-document structural validation step.
//
// # Core Concepts
//
//   - [Issue]: one recorded failure, serialized as a report record with
//     path, start_line, end_line, annotation_level and message.
//   - [Result]: the ordered issues of a run plus document counters.
//     A run passes when it recorded no issues.
//   - [ValidateDocument]: checks one XML file against a compiled schema and
//     returns at most one issue, the first violation found.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	if issue := validator.ValidateDocument(rel, abs, entry); issue != nil {
//		result.Add(*issue)
//	}
//
//	if !result.Passed() {
//		// fail the build
//	}
package validator
