package core

import "strings"

// Cell is a single screen position: a rune plus its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the game to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear fills the entire screen with spaces in the default color.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault}
		}
	}
}

// Set places a rune at the given position in the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns an empty default cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for i, r := range text {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len(text)) / 2
	s.DrawText(x, y, text)
}

// FillRect fills a rectangular area with the given rune and color.
func (s *Screen) FillRect(x, y, w, h int, r rune, c Color) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.SetColored(x+dx, y+dy, r, c)
		}
	}
}

// DrawBox draws a border around the given area using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	s.Set(x, y, '┌')
	s.Set(x+w-1, y, '┐')
	s.Set(x, y+h-1, '└')
	s.Set(x+w-1, y+h-1, '┘')
	for i := 1; i < w-1; i++ {
		s.Set(x+i, y, '─')
		s.Set(x+i, y+h-1, '─')
	}
	for i := 1; i < h-1; i++ {
		s.Set(x, y+i, '│')
		s.Set(x+w-1, y+i, '│')
	}
}

// DrawHLine draws a horizontal line of the given rune.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// Row returns one row of the screen as a plain string (colors dropped).
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.cells[y][x].Rune)
	}
	return sb.String()
}

// String returns the whole screen as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
