package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFetchErrorString(t *testing.T) {
	err := &FetchError{Provider: "espn", Kind: KindStatus, StatusCode: 503, Err: errors.New("unavailable")}
	got := err.Error()
	for _, want := range []string{"espn", "status", "503", "unavailable"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}

	bare := &FetchError{Provider: "espn", Kind: KindDecode}
	if got := bare.Error(); got != "espn: decode failure" {
		t.Fatalf("unexpected bare message %q", got)
	}
}

func TestAsFetchErrorUnwraps(t *testing.T) {
	inner := &FetchError{Provider: "espn", Kind: KindTransport, Err: context.DeadlineExceeded}
	wrapped := fmt.Errorf("scoreboard: %w", inner)

	fe, ok := AsFetchError(wrapped)
	if !ok || fe.Kind != KindTransport {
		t.Fatalf("expected transport fetch error, got %+v", fe)
	}
	if !errors.Is(wrapped, context.DeadlineExceeded) {
		t.Fatalf("expected cause to remain reachable")
	}
	if _, ok := AsFetchError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to match")
	}
}
