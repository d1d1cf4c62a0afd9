package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '█')
	if got := s.Get(3, 2); got != '█' {
		t.Errorf("Get(3, 2) = %q, expected '█'", got)
	}

	// Out-of-bounds writes are silently ignored
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '▓', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '▓' || cell.Color != ColorRed {
		t.Errorf("GetCell = %+v, expected red '▓'", cell)
	}

	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipping at the right edge
	s.DrawText(7, 0, "world")
	if got := s.Row(0); got != "       wor" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '@')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != '@' {
		t.Errorf("content lost on grow, Get(2,2) = %q", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != '@' {
		t.Errorf("content lost on shrink, Get(2,2) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	expected := "ab \ncd "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' {
		t.Error("box corners missing on top row")
	}
	if s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("box corners missing on bottom row")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges missing")
	}
}
