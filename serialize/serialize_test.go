package serialize

import (
	"strings"
	"testing"

	"github.com/johnietre/snaplist"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := snaplist.NewFrom(1, 2, 3)
	s, err := EncodeString(l)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if s != "[1,2,3]" {
		t.Fatalf("expected [1,2,3], got %q", s)
	}

	decoded, err := DecodeString[int](s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	it := decoded.Iter()
	for _, want := range []int{1, 2, 3} {
		got, ok := it.Next()
		if !ok || got != want {
			t.Fatalf("expected %d, got %d ok=%v", want, got, ok)
		}
	}
	if _, ok := it.Next(); ok {
		t.Fatal("expected exhausted iterator")
	}
}

func TestEncodeEmptyList(t *testing.T) {
	l := snaplist.New[string]()
	s, err := EncodeString(l)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if s != "[]" {
		t.Fatalf("expected [], got %q", s)
	}
}

func TestDecodeJSONReader(t *testing.T) {
	l, err := DecodeJSON[string](strings.NewReader(`["a","b"]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("expected len 2, got %d", l.Len())
	}
}
