package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "simple error",
			err:  stderrors.New("something broke"),
			want: "Error: something broke",
		},
		{
			name: "wrapped error",
			err:  fmt.Errorf("outer: %w", stderrors.New("inner")),
			want: "Error: outer: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed after %d tries", 3)
	want := "Error: failed after 3 tries"
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}

func TestRemoteError(t *testing.T) {
	inner := stderrors.New("connection refused")
	err := Remote("insert", "tasks", inner)

	if !IsRemote(err) {
		t.Error("IsRemote() = false for a RemoteError")
	}
	if !stderrors.Is(err, inner) {
		t.Error("RemoteError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "insert") || !strings.Contains(err.Error(), "tasks") {
		t.Errorf("RemoteError message missing op/table: %q", err.Error())
	}

	wrapped := fmt.Errorf("hydrate: %w", err)
	if !IsRemote(wrapped) {
		t.Error("IsRemote() = false for a wrapped RemoteError")
	}
}

func TestContentError(t *testing.T) {
	err := Content("missing API key", nil)
	if !IsContent(err) {
		t.Error("IsContent() = false for a ContentError")
	}
	if IsRemote(err) {
		t.Error("IsRemote() = true for a ContentError")
	}
	if !strings.Contains(err.Error(), "missing API key") {
		t.Errorf("ContentError message = %q", err.Error())
	}

	withCause := Content("unparsable response", stderrors.New("unexpected EOF"))
	if !strings.Contains(withCause.Error(), "unexpected EOF") {
		t.Errorf("ContentError with cause = %q", withCause.Error())
	}
}

func TestIdentitySentinels(t *testing.T) {
	wrapped := fmt.Errorf("connect: %w", ErrIdentityUnavailable)
	if !stderrors.Is(wrapped, ErrIdentityUnavailable) {
		t.Error("wrapped ErrIdentityUnavailable not matched by errors.Is")
	}
	if stderrors.Is(wrapped, ErrIdentityRejected) {
		t.Error("ErrIdentityUnavailable matched ErrIdentityRejected")
	}
}
