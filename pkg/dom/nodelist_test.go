package dom

import (
	"errors"
	"testing"
)

func TestNodeListEmpty(t *testing.T) {
	var l NodeList

	if got := l.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if _, err := l.First(); !errors.Is(err, ErrEmptyList) {
		t.Errorf("First() error = %v, want ErrEmptyList", err)
	}
	if _, err := l.Last(); !errors.Is(err, ErrEmptyList) {
		t.Errorf("Last() error = %v, want ErrEmptyList", err)
	}
	if got := l.At(0); got != nil {
		t.Errorf("At(0) = %v, want nil", got)
	}
}

func TestNodeListAccessors(t *testing.T) {
	m, _ := newTestMapper(t)
	root := mustFragment(t, m, `<div><a></a><b></b><i></i></div>`).(*Element)
	l, err := root.Children()
	if err != nil {
		t.Fatalf("Children() error: %v", err)
	}

	first, err := l.First()
	if err != nil {
		t.Fatalf("First() error: %v", err)
	}
	if got := first.(*Element).TagName(); got != "a" {
		t.Errorf("First() tag = %q, want %q", got, "a")
	}

	last, err := l.Last()
	if err != nil {
		t.Fatalf("Last() error: %v", err)
	}
	if got := last.(*Element).TagName(); got != "i" {
		t.Errorf("Last() tag = %q, want %q", got, "i")
	}

	if got := l.At(1).(*Element).TagName(); got != "b" {
		t.Errorf("At(1) tag = %q, want %q", got, "b")
	}
	if got := l.At(3); got != nil {
		t.Errorf("At(3) = %v, want nil", got)
	}
	if got := l.At(-1); got != nil {
		t.Errorf("At(-1) = %v, want nil", got)
	}
}
