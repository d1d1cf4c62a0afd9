package game

import (
	"fmt"

	"github.com/mkositsyn/temprun/internal/core"
)

// Rendering projects the virtual pixel world onto the cell grid. All
// gameplay math stays in world space; only this file knows about cells.

// Render draws the full frame for the current state into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	camX, camY := s.CameraOffset()

	s.drawBackground(dst)
	s.drawGround(dst)

	for _, o := range s.manager.DrawOrder() {
		s.drawObstacle(dst, o, camX, camY)
	}
	for _, c := range s.manager.Coins() {
		if c.Collected {
			continue
		}
		s.drawCoin(dst, c, camX, camY)
	}

	s.drawPlayer(dst, camX, camY)
	s.drawFlash(dst)
	s.drawHUD(dst)

	switch s.state {
	case StateMenu:
		s.drawMenuOverlay(dst)
	case StatePaused:
		s.drawPausedOverlay(dst)
	case StateGameOver:
		s.drawGameOverOverlay(dst)
	}
}

// toCell projects a world coordinate onto the cell grid.
func (s *Session) toCell(dst *core.Screen, wx, wy float64) (int, int) {
	x := int(wx / s.cfg.World.Width * float64(dst.Width()))
	y := int(wy / s.cfg.World.Height * float64(dst.Height()))
	return x, y
}

// toCellRect projects a world rectangle onto the cell grid, guaranteeing at
// least one cell of extent for anything with positive world size.
func (s *Session) toCellRect(dst *core.Screen, r core.RectF) (x, y, w, h int) {
	x, y = s.toCell(dst, r.X, r.Y)
	x2, y2 := s.toCell(dst, r.Right(), r.Bottom())
	w = x2 - x
	h = y2 - y
	if w < 1 && r.W > 0 {
		w = 1
	}
	if h < 1 && r.H > 0 {
		h = 1
	}
	return x, y, w, h
}

func (s *Session) drawBackground(dst *core.Screen) {
	// Sparse temple wall texture, deterministic per cell so it does not
	// shimmer between frames.
	groundRow := s.groundRow(dst)
	for y := 1; y < groundRow; y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+y*13)%37 == 0 {
				dst.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}
}

func (s *Session) groundRow(dst *core.Screen) int {
	groundWorldY := s.cfg.World.Height - s.cfg.Player.GroundOffset
	_, row := s.toCell(dst, 0, groundWorldY)
	if row >= dst.Height() {
		row = dst.Height() - 1
	}
	return row
}

func (s *Session) drawGround(dst *core.Screen) {
	row := s.groundRow(dst)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, row, '═', core.ColorYellow)
	}
	for y := row + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x+y)%3 == 0 {
				dst.SetColored(x, y, '▒', core.ColorGray)
			}
		}
	}
}

func (s *Session) drawObstacle(dst *core.Screen, o Obstacle, camX, camY float64) {
	r := o.Bounds()
	r.X += camX
	r.Y += camY
	x, y, w, h := s.toCellRect(dst, r)
	if w < 1 || h < 1 {
		return
	}

	// Single-cell obstacles get a plain marker; larger ones get the
	// detailed variant drawing.
	if w == 1 && h == 1 {
		glyph, color := '#', core.ColorGray
		if o.Kind == KindFire {
			glyph, color = '^', core.ColorRed
		}
		dst.SetColored(x, y, glyph, color)
		return
	}

	switch o.Kind {
	case KindFire:
		// Flames taper toward the top; hotter color at the base.
		for dy := 0; dy < h; dy++ {
			rowW := w * (dy + 1) / h
			if rowW < 1 {
				rowW = 1
			}
			start := x + (w-rowW)/2
			color := core.ColorBrightYellow
			if dy > h/2 {
				color = core.ColorRed
			} else if dy > h/4 {
				color = core.ColorOrange
			}
			for dx := 0; dx < rowW; dx++ {
				glyph := '▲'
				if dy == h-1 {
					glyph = '█'
				}
				dst.SetColored(start+dx, y+dy, glyph, color)
			}
		}
	default:
		// Rock: solid block with a shaded top edge.
		dst.FillRect(x, y, w, h, '█', core.ColorGray)
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, y, '▄', core.ColorWhite)
		}
	}
}

func (s *Session) drawCoin(dst *core.Screen, c Coin, camX, camY float64) {
	r := c.Bounds()
	cx, cy := r.Center()
	x, y := s.toCell(dst, cx+camX, cy+camY)

	// The spin phase picks the glyph so coins visibly rotate.
	frames := []rune{'●', '◐', '○', '◑'}
	glyph := frames[int(c.Rotation/90)%len(frames)]
	dst.SetColored(x, y, glyph, core.ColorBrightYellow)
}

func (s *Session) drawPlayer(dst *core.Screen, camX, camY float64) {
	r := s.player.Bounds()
	r.X += camX
	r.Y += camY
	x, y, w, h := s.toCellRect(dst, r)
	if w < 1 || h < 1 {
		return
	}

	color := core.ColorCyan
	if s.player.Airborne() {
		color = core.ColorBrightWhite
	}

	if w == 1 && h == 1 {
		dst.SetColored(x, y, '@', color)
		return
	}

	dst.FillRect(x, y, w, h, '█', color)
	// Head marker on the top row.
	dst.SetColored(x+w/2, y, '@', core.ColorBrightWhite)
}

// drawFlash dims to nothing as the flash decays. Rendered as a screen-edge
// frame so the play field stays readable underneath.
func (s *Session) drawFlash(dst *core.Screen) {
	if s.screenFlash <= 0 {
		return
	}
	glyph := '░'
	if s.screenFlash > s.cfg.Effects.FlashIntensity/2 {
		glyph = '▓'
	}
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 0, glyph, core.ColorBrightRed)
		dst.SetColored(x, dst.Height()-1, glyph, core.ColorBrightRed)
	}
	for y := 0; y < dst.Height(); y++ {
		dst.SetColored(0, y, glyph, core.ColorBrightRed)
		dst.SetColored(dst.Width()-1, y, glyph, core.ColorBrightRed)
	}
}

func (s *Session) drawHUD(dst *core.Screen) {
	score := fmt.Sprintf("SCORE %6d", s.manager.ScoreInt())
	dst.DrawTextColored(1, 0, score, core.ColorBrightWhite)

	coins := fmt.Sprintf("COINS %d", s.coinsCollected)
	dst.DrawTextColored(16, 0, coins, core.ColorBrightYellow)

	speed := fmt.Sprintf("SPEED %.1fx", s.manager.SpeedMultiplier())
	dst.DrawTextColored(28, 0, speed, core.ColorCyan)

	status := ""
	if s.muted {
		status += " [MUTED]"
	}
	if s.gestureEnabled {
		status += " [" + s.GestureName() + "]"
	}
	if status != "" {
		dst.DrawTextColored(dst.Width()-len(status)-1, 0, status, core.ColorGray)
	}
}

// overlayBox draws a bordered box centered on screen and returns the y of
// its first inner row.
func overlayBox(dst *core.Screen, w, h int) (int, int) {
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h)
	return x, y
}

func (s *Session) drawMenuOverlay(dst *core.Screen) {
	_, y := overlayBox(dst, 40, 9)
	dst.DrawTextCentered(y+1, "T E M P L E   R U N N E R")
	dst.DrawTextCentered(y+3, fmt.Sprintf("High score: %d", s.highScore))
	dst.DrawTextCentered(y+4, fmt.Sprintf("Total coins: %d", s.totalCoins))
	dst.DrawTextCentered(y+6, "SPACE jump  ENTER start  Q quit")
	dst.DrawTextCentered(y+7, "M mute  G gesture input")
}

func (s *Session) drawPausedOverlay(dst *core.Screen) {
	_, y := overlayBox(dst, 26, 5)
	dst.DrawTextCentered(y+1, "P A U S E D")
	dst.DrawTextCentered(y+3, "P resume  Q quit")
}

func (s *Session) drawGameOverOverlay(dst *core.Screen) {
	_, y := overlayBox(dst, 36, 9)
	dst.DrawTextCentered(y+1, "G A M E   O V E R")
	dst.DrawTextCentered(y+3, fmt.Sprintf("Score: %d   Coins: %d", s.manager.ScoreInt(), s.coinsCollected))
	dst.DrawTextCentered(y+4, fmt.Sprintf("High score: %d", s.highScore))
	dst.DrawTextCentered(y+5, fmt.Sprintf("Total coins: %d", s.totalCoins))
	dst.DrawTextCentered(y+7, "R restart  Q quit")
}
