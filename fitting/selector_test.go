package fitting

import (
	"errors"
	"fmt"
	"testing"
)

func TestSelectorString(t *testing.T) {
	tests := []struct {
		desc string
		in   Selector
		want string
	}{
		{
			desc: "id",
			in:   ByID("login"),
			want: "id=login",
		},
		{
			desc: "css",
			in:   ByCSS("div > a.next"),
			want: "css=div > a.next",
		},
		{
			desc: "partial link text",
			in:   ByPartialLinkText("Next"),
			want: "partial-link=Next",
		},
		{
			desc: "unknown kind",
			in:   Selector{Kind: 42, Value: "x"},
			want: "SelectorKind(42)=x",
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			if got := tc.in.String(); got != tc.want {
				t.Errorf("%#v.String() = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := NewError("waiting for id=x", ErrNoSuchElement)
	if !errors.Is(err, ErrNoSuchElement) {
		t.Errorf("errors.Is(%v, ErrNoSuchElement) = false, want true", err)
	}
	if got, want := err.Error(), "waiting for id=x: no such element"; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("outer: %w", NewError("plain", nil))
	var fe *Error
	if !errors.As(wrapped, &fe) {
		t.Fatalf("errors.As(%v, *Error) = false, want true", wrapped)
	}
	if fe.Error() != "plain" {
		t.Errorf("fe.Error() = %q, want %q", fe.Error(), "plain")
	}
}
