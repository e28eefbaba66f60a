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
			err:  &ExitError{Err: ErrNotFound, Code: ExitUser},
			want: "file not found",
		},
		{
			name: "with wrapped error",
			err:  &ExitError{Err: fmt.Errorf("loading config: %w", ErrNotFound), Code: ExitUser},
			want: "loading config: file not found",
		},
		{
			name: "nil underlying error",
			err:  &ExitError{Err: nil, Code: ExitUser},
			want: "exit code 1",
		},
		{
			name: "success code with error",
			err:  &ExitError{Err: errors.New("unexpected"), Code: ExitSuccess},
			want: "unexpected",
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
			err:        &ExitError{Err: ErrNotFound, Code: ExitUser},
			wantTarget: ErrNotFound,
			wantIs:     true,
		},
		{
			name:       "unwrap through cockroach wrap",
			err:        &ExitError{Err: Wrap(ErrAlreadyExists, "writing pono.toml"), Code: ExitUser},
			wantTarget: ErrAlreadyExists,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        &ExitError{Err: ErrNotFound, Code: ExitUser},
			wantTarget: ErrAlreadyExists,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        &ExitError{Err: nil, Code: ExitUser},
			wantTarget: ErrNotFound,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", New("boom"), ExitSystem},
		{"user error", NewUserError(ErrAlreadyExists, ""), ExitUser},
		{"wrapped system error", Wrap(NewSystemError(New("disk"), ""), "running"), ExitSystem},
		{"reported error", NewReportedError(New("status")), ExitUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewConstructors(t *testing.T) {
	t.Run("NewUserError", func(t *testing.T) {
		e := NewUserError(errors.New("user error"), "check input")
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "check input" {
			t.Errorf("Suggestion = %q, want 'check input'", e.Suggestion)
		}
	})

	t.Run("NewSystemError", func(t *testing.T) {
		e := NewSystemError(errors.New("system error"), "check logs")
		if e.Code != ExitSystem {
			t.Errorf("Code = %d, want %d", e.Code, ExitSystem)
		}
	})

	t.Run("NewConfigError", func(t *testing.T) {
		e := NewConfigError(errors.New("config error"))
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "Run: pono doctor" {
			t.Errorf("Suggestion = %q, want 'Run: pono doctor'", e.Suggestion)
		}
	})

	t.Run("NewReportedError", func(t *testing.T) {
		e := NewReportedError(errors.New("already shown"))
		if !e.Reported {
			t.Error("Reported = false, want true")
		}
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
	})
}
