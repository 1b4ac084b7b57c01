package domain

import (
	"strings"
	"testing"
)

func TestInStock(t *testing.T) {
	if (Product{Stock: 0}).InStock() {
		t.Fatal("zero stock should not be in stock")
	}
	if (Product{Stock: -2}).InStock() {
		t.Fatal("negative stock should not be in stock")
	}
	if !(Product{Stock: 1}).InStock() {
		t.Fatal("positive stock should be in stock")
	}
}

func TestShortDescription(t *testing.T) {
	short := Product{Description: "A widget."}
	if got := short.ShortDescription(); got != "A widget." {
		t.Fatalf("short description altered: %q", got)
	}

	long := Product{Description: strings.Repeat("x", 80)}
	if got := long.ShortDescription(); len(got) != 50 {
		t.Fatalf("expected 50 chars, got %d", len(got))
	}

	// Rune-safe truncation
	runes := Product{Description: strings.Repeat("é", 60)}
	if got := runes.ShortDescription(); len([]rune(got)) != 50 {
		t.Fatalf("expected 50 runes, got %d", len([]rune(got)))
	}
}
