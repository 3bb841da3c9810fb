package core

import (
	"testing"
	"unicode/utf8"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(50, 2)

	if s.Width() != 50 {
		t.Errorf("Width() = %d, expected 50", s.Width())
	}
	if s.Height() != 2 {
		t.Errorf("Height() = %d, expected 2", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.at(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.at(x, y), x, y)
			}
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("Negative dimensions should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != "" {
		t.Errorf("Empty screen should render empty rows, got %q", s.Row(0))
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(5, 2, 'X')
	if s.at(5, 2) != 'X' {
		t.Errorf("at(5, 2) = %q, expected 'X'", s.at(5, 2))
	}

	// Out of bounds should be ignored
	s.Set(-1, 0, 'Y')
	s.Set(0, -1, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')

	if s.at(-1, 0) != ' ' {
		t.Error("Out-of-bounds at should return space")
	}
	if s.at(100, 100) != ' ' {
		t.Error("Out-of-bounds at should return space")
	}
}

func TestScreenFillRow(t *testing.T) {
	s := NewScreen(6, 2)
	s.FillRow(1, '_')
	s.FillRow(7, '#') // ignored

	if got := s.Row(0); got != "      " {
		t.Errorf("Row(0) = %q, expected blanks", got)
	}
	if got := s.Row(1); got != "______" {
		t.Errorf("Row(1) = %q, expected ground filler", got)
	}
}

func TestScreenRowWideRunes(t *testing.T) {
	s := NewScreen(4, 1)
	s.Fill('═')
	s.Set(2, 0, '▓')

	row := s.Row(0)
	if n := utf8.RuneCountInString(row); n != 4 {
		t.Errorf("Row should contain 4 runes, got %d (%q)", n, row)
	}
	if row != "══▓═" {
		t.Errorf("Row(0) = %q, expected %q", row, "══▓═")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 2)
	if got := s.Row(-1); got != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
