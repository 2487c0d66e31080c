package main

import (
	"fmt"

	"github.com/beka-birhanu/maze-garden/collectible"
	"github.com/beka-birhanu/maze-garden/game"
	"github.com/beka-birhanu/maze-garden/maze"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	cellWidth  = 4 // Screen columns per maze cell, including one wall column
	cellHeight = 2 // Screen rows per maze cell, including one wall row
	mazeTop    = 2 // Rows above the maze reserved for the status line
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	exitStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// client drives a session from a terminal.
type client struct {
	screen   tcell.Screen
	session  *game.Session
	sound    *sounds
	showHint bool
	status   string
}

func newClient(screen tcell.Screen, session *game.Session, sound *sounds) *client {
	return &client{
		screen:  screen,
		session: session,
		sound:   sound,
		status:  "Find the exit in the bottom-right corner",
	}
}

func (c *client) run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	c.draw()
	for ev := range eventChan {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if !c.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			c.screen.Sync()
		}
		c.draw()
	}
}

// keyCode translates a terminal key into the codes understood by the session.
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyArrowUp
	case tcell.KeyDown:
		return game.KeyArrowDown
	case tcell.KeyLeft:
		return game.KeyArrowLeft
	case tcell.KeyRight:
		return game.KeyArrowRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.KeyW
		case 'a', 'A':
			return game.KeyA
		case 's', 'S':
			return game.KeyS
		case 'd', 'D':
			return game.KeyD
		}
	}
	return ""
}

// handleKey applies one key press and reports whether the client keeps running.
func (c *client) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		c.advance()
		return true
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			return false
		case 't':
			c.status = fmt.Sprintf("Controls: %s", c.session.ToggleControls())
			return true
		case 'h':
			c.showHint = !c.showHint
			return true
		case 'n':
			c.advance()
			return true
		case 'r':
			if err := c.session.Reset(); err != nil {
				c.status = err.Error()
				return true
			}
			c.status = "Back to level 1"
			return true
		}
	}

	d, ok := c.session.DirectionForKey(keyCode(ev))
	if !ok {
		return true
	}

	out := c.session.Move(d)
	if out.Collected != nil {
		c.sound.pickup(out.Collected.Kind)
		c.status = fmt.Sprintf("+%d %s %s", out.Collected.Points(), out.Collected.Glyph(), out.Collected.Kind)
	}
	if out.Moved && out.LevelComplete {
		c.sound.complete()
		c.status = "Level complete! Press n for the next maze"
	}
	return true
}

func (c *client) advance() {
	if !c.session.Snapshot().LevelComplete {
		return
	}
	if err := c.session.NextLevel(); err != nil {
		c.status = err.Error()
		return
	}
	c.status = fmt.Sprintf("Level %d", c.session.Snapshot().Level)
}

func (c *client) draw() {
	c.screen.Clear()
	st := c.session.Snapshot()
	m := st.Maze

	c.drawText(0, 0, textStyle, fmt.Sprintf("Level %d   Score %d   %s %d  %s %d  %s %d   [%s]",
		st.Level, st.Score.Total,
		collectible.Star.Glyph(), st.Score.Stars,
		collectible.Coin.Glyph(), st.Score.Coins,
		collectible.Heart.Glyph(), st.Score.Hearts,
		st.Scheme))

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			cell, _ := m.Cell(x, y)
			c.drawCell(cell)
		}
	}

	if c.showHint {
		for _, p := range m.Path(st.Player, m.End) {
			c.drawCenter(p, '·', hintStyle)
		}
	}
	c.drawCenter(m.End, 'E', exitStyle)
	for _, item := range st.Collectibles {
		c.drawCenter(item.Position, []rune(item.Glyph())[0], textStyle)
	}
	c.drawCenter(st.Player, '@', playerStyle)

	footer := mazeTop + m.Height*cellHeight + 2
	c.drawText(0, footer, textStyle, c.status)
	c.drawText(0, footer+1, hintStyle, "move: arrows/wasd  t: controls  h: hint  n: next  r: reset  q: quit")
	c.screen.Show()
}

// drawCell draws the corners and standing walls of one cell.
func (c *client) drawCell(cell maze.Cell) {
	px, py := cell.X*cellWidth, mazeTop+cell.Y*cellHeight

	for _, corner := range [][2]int{{0, 0}, {cellWidth, 0}, {0, cellHeight}, {cellWidth, cellHeight}} {
		c.screen.SetContent(px+corner[0], py+corner[1], '+', nil, wallStyle)
	}
	for i := 1; i < cellWidth; i++ {
		if cell.Top {
			c.screen.SetContent(px+i, py, '-', nil, wallStyle)
		}
		if cell.Bottom {
			c.screen.SetContent(px+i, py+cellHeight, '-', nil, wallStyle)
		}
	}
	if cell.Left {
		c.screen.SetContent(px, py+1, '|', nil, wallStyle)
	}
	if cell.Right {
		c.screen.SetContent(px+cellWidth, py+1, '|', nil, wallStyle)
	}
}

func (c *client) drawCenter(p maze.Position, r rune, style tcell.Style) {
	c.screen.SetContent(p.X*cellWidth+2, mazeTop+p.Y*cellHeight+1, r, nil, style)
}

func (c *client) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		c.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

