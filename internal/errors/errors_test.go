package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrInvalidPath, ExitUser),
			want: "invalid path",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("loading config: %w", ErrInvalidConfig), ExitUser),
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
		{
			name: "lint verdict",
			err:  NewExitError(Wrapf(ErrLintFailed, "%d error(s) recorded", 3), ExitUser),
			want: "3 error(s) recorded: XMLLint FAILED!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrMissingInput, ExitUser),
			wantTarget: ErrMissingInput,
			wantIs:     true,
		},
		{
			name:       "unwrap through wrapped error",
			err:        NewExitError(Wrap(ErrInvalidPath, "xsds"), ExitUser),
			wantTarget: ErrInvalidPath,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrReportWrite, ExitSystem),
			wantTarget: ErrInvalidConfig,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitUser),
			wantTarget: ErrLintFailed,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("errors.Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestMark_PreservesMessage(t *testing.T) {
	err := Mark(Newf("%q does not exist", "xsds"), ErrInvalidPath)

	if !Is(err, ErrInvalidPath) {
		t.Error("Is() should match the marked sentinel")
	}
	if got := err.Error(); got != `"xsds" does not exist` {
		t.Errorf("Error() = %q", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantHint bool
	}{
		{"missing input", Wrap(ErrMissingInput, "xsds path"), ExitUser, true},
		{"invalid path", Mark(New("outside root"), ErrInvalidPath), ExitUser, true},
		{"invalid config", ErrInvalidConfig, ExitUser, true},
		{"report write", Wrap(ErrReportWrite, "mkdir"), ExitSystem, true},
		{"lint failed", Wrapf(ErrLintFailed, "%d error(s)", 2), ExitUser, false},
		{"existing exit error", NewExitError(errors.New("x"), 42), 42, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got == nil {
				t.Fatal("Classify() = nil")
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", got.Code, tt.wantCode)
			}
			if (got.Suggestion != "") != tt.wantHint {
				t.Errorf("Suggestion = %q, wantHint %v", got.Suggestion, tt.wantHint)
			}
		})
	}

	if Classify(nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"ErrMissingInput", ErrMissingInput, "missing input"},
		{"ErrInvalidPath", ErrInvalidPath, "invalid path"},
		{"ErrSchemaLoad", ErrSchemaLoad, "schema load error"},
		{"ErrValidation", ErrValidation, "validation error"},
		{"ErrReportWrite", ErrReportWrite, "report write error"},
		{"ErrInvalidConfig", ErrInvalidConfig, "invalid configuration"},
		{"ErrLintFailed", ErrLintFailed, "XMLLint FAILED!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, got, tt.wantMsg)
			}
		})
	}
}

func TestClassify_FindsExitErrorInChain(t *testing.T) {
	inner := NewSystemError(ErrReportWrite, "free some disk space")
	got := Classify(Wrap(inner, "emitting report"))

	if got != inner {
		t.Errorf("Classify() = %#v, want the wrapped ExitError", got)
	}
}

func TestClassify_PreservesSentinel(t *testing.T) {
	err := Wrapf(Mark(New("xsds"), ErrMissingInput), "lint")
	got := Classify(err)

	if !Is(got, ErrMissingInput) {
		t.Error("classified error should still match ErrMissingInput")
	}
	if got.Error() != err.Error() {
		t.Errorf("Error() = %q, want %q", got.Error(), err.Error())
	}
}

func TestConstructors(t *testing.T) {
	cause := New("disk full")
	tests := []struct {
		name           string
		err            *ExitError
		wantCode       int
		wantSuggestion string
	}{
		{"plain", NewExitError(cause, 3), 3, ""},
		{"user", NewUserError(cause, "fix input"), ExitUser, "fix input"},
		{"system", NewSystemError(cause, "check logs"), ExitSystem, "check logs"},
		{"config", NewConfigError(cause), ExitUser, "Run: xmllint config show"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Err != cause {
				t.Errorf("Err = %v, want %v", tt.err.Err, cause)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Suggestion != tt.wantSuggestion {
				t.Errorf("Suggestion = %q, want %q", tt.err.Suggestion, tt.wantSuggestion)
			}
		})
	}
}
