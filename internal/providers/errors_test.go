package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFetchErrorStringAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &FetchError{URL: "http://x.test/a", StatusCode: 503, Err: cause}

	if got := err.Error(); !strings.Contains(got, "status=503") || !strings.Contains(got, "http://x.test/a") {
		t.Fatalf("expected url and status in error string, got %q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected fetch error to unwrap to cause")
	}

	wrapped := fmt.Errorf("list games: %w", err)
	fe, ok := AsFetchError(wrapped)
	if !ok || fe.URL != "http://x.test/a" {
		t.Fatalf("expected to unwrap fetch error, got %+v", fe)
	}

	noStatus := &FetchError{URL: "u", Err: cause}
	if strings.Contains(noStatus.Error(), "status=") {
		t.Fatalf("expected status omitted when unknown, got %q", noStatus.Error())
	}
}

func TestShapeErrorDescribesPath(t *testing.T) {
	err := fmt.Errorf("wrap: %w", &ShapeError{Path: "events", Expected: "list", Got: "notalist"})

	se, ok := AsShapeError(err)
	if !ok {
		t.Fatalf("expected shape error")
	}
	if got := se.Error(); !strings.Contains(got, "events") || !strings.Contains(got, "string") {
		t.Fatalf("unexpected shape error string %q", got)
	}
	if _, ok := AsFetchError(err); ok {
		t.Fatalf("shape error must not unwrap as fetch error")
	}
}

func TestNotFoundErrorWrapsLastCause(t *testing.T) {
	last := &FetchError{URL: "u3", StatusCode: 404, Err: errors.New("not found")}
	err := &NotFoundError{Resource: "player", ID: "42", Err: last}

	if _, ok := AsNotFoundError(err); !ok {
		t.Fatalf("expected not found error")
	}
	fe, ok := AsFetchError(err)
	if !ok || fe.URL != "u3" {
		t.Fatalf("expected wrapped last cause, got %+v", fe)
	}
	if got := (&NotFoundError{Resource: "play", ID: "1"}).Error(); got != "play 1 not found" {
		t.Fatalf("unexpected message %q", got)
	}
}
