// Package logging builds the slog loggers used by xmllint.
//
// Terminal output goes through [Handler], a compact colored text handler,
// or slog's JSON handler when --log-format=json. When [Config.File] is set
// every record is also written as JSON lines to that writer, which backs
// the --log-file flag.
//
// Log output is diagnostic only. The user-facing progress lines and the
// lint summary are printed by the progress and validator packages and are
// never routed through slog. Without -v only warnings reach the terminal;
// -vvv enables [LevelTrace], which logs one record per linted document.
//
// Tests should use [ForTest] so records land in t.Log.
package logging
