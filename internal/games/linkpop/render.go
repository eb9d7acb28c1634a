package linkpop

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-linkpop/internal/core"
	"github.com/vovakirdan/tui-linkpop/internal/games/linkpop/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3 // Lines above the board
)

// Board glyphs
const (
	chipGlyph    = '●'
	linkedGlyph  = '◉'
	destroyGlyph = '✦'
	cursorLeft   = '▸'
	cursorRight  = '◂'
)

// chipColor returns the display color for a chip type.
func chipColor(t core.ChipType) platformcore.Color {
	switch t {
	case core.TypeRed:
		return platformcore.ColorRed
	case core.TypeGreen:
		return platformcore.ColorGreen
	case core.TypeBlue:
		return platformcore.ColorBlue
	case core.TypeYellow:
		return platformcore.ColorYellow
	case core.TypePurple:
		return platformcore.ColorMagenta
	case core.TypeOrange:
		return platformcore.ColorOrange
	default:
		return platformcore.ColorDefault
	}
}

// chipColorBright returns the highlight color for a chip type, used for
// linked chips and fresh spawns.
func chipColorBright(t core.ChipType) platformcore.Color {
	switch t {
	case core.TypeRed:
		return platformcore.ColorBrightRed
	case core.TypeGreen:
		return platformcore.ColorBrightGreen
	case core.TypeBlue:
		return platformcore.ColorBrightBlue
	case core.TypeYellow:
		return platformcore.ColorBrightYellow
	case core.TypePurple:
		return platformcore.ColorBrightMagenta
	case core.TypeOrange:
		return platformcore.ColorBrightWhite
	default:
		return platformcore.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	if g.orch == nil {
		g.renderFatal(dst)
		return
	}

	boardW := g.orch.Cols()*cellWidth + 1  // +1 for right border
	boardH := g.orch.Rows()*cellHeight + 1 // +1 for bottom border

	// Render HUD
	g.renderHUD(dst, g.boardX, boardW)

	// Render board
	g.renderBoard(dst, g.boardX, g.boardY)

	// Render overlays
	g.renderOverlays(dst, g.boardX, g.boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	msg := "Window too small"
	x := (g.runtime.ScreenW - len(msg)) / 2
	y := g.runtime.ScreenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.runtime.ScreenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderFatal shows the board error when no playable board exists.
func (g *Game) renderFatal(dst *platformcore.Screen) {
	msg := "Board unavailable"
	if g.fatalErr != nil {
		msg = g.fatalErr.Error()
	}
	dst.DrawTextCentered(g.runtime.ScreenH/2, msg)
	dst.DrawTextCentered(g.runtime.ScreenH/2+1, "Press Q to quit")
}

// renderHUD draws the score, turn and level info.
func (g *Game) renderHUD(dst *platformcore.Screen, boardX, boardW int) {
	// Title
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	// Score (with target in campaign)
	var scoreStr string
	if target := g.orch.Score().Target(); target > 0 {
		scoreStr = fmt.Sprintf("Score: %d/%d", g.orch.Score().Current(), target)
	} else {
		scoreStr = fmt.Sprintf("Score: %d", g.totalScore())
	}
	if g.scoreFlashTicks > 0 {
		dst.DrawTextColored(boardX, 1, scoreStr, platformcore.ColorBrightYellow)
	} else {
		dst.DrawText(boardX, 1, scoreStr)
	}

	// Level and turns (campaign) or turns only (endless)
	var infoStr string
	if g.mode == ModeCampaign {
		infoStr = fmt.Sprintf("Level %d/%d  Turns: %d", g.levelIndex+1, LevelCount(), g.orch.Turns().Remaining())
	} else {
		infoStr = "Turns: ∞"
	}
	infoX := boardX + boardW - textWidth(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	switch {
	case g.turnFlashTicks > 0:
		dst.DrawTextColored(infoX, 1, infoStr, platformcore.ColorBrightYellow)
	case g.lowOnTurns():
		dst.DrawTextColored(infoX, 1, infoStr, platformcore.ColorBrightRed)
	default:
		dst.DrawText(infoX, 1, infoStr)
	}

	// Notice (chain score, shuffle progress) or mode indicator
	if g.notice != "" {
		dst.DrawTextColored(boardX, 2, g.notice, platformcore.ColorYellow)
	} else {
		modeStr := "Campaign"
		if g.mode == ModeEndless {
			modeStr = "Endless"
		}
		modeX := boardX + (boardW-len(modeStr))/2
		dst.DrawText(modeX, 2, modeStr)
	}

	// Live chain length while dragging
	if g.orch.Dragging() {
		chainStr := fmt.Sprintf("Chain: %d", g.orch.ChainLen())
		chainX := boardX + boardW - len(chainStr)
		dst.DrawTextColored(chainX, 2, chainStr, platformcore.ColorBrightWhite)
	}
}

// lowOnTurns reports whether the turn counter should warn.
func (g *Game) lowOnTurns() bool {
	t := g.orch.Turns()
	return !t.Unlimited() && t.Remaining() <= 3
}

// renderBoard draws the grid, the chips on it, the active chain and the
// cursor.
func (g *Game) renderBoard(dst *platformcore.Screen, boardX, boardY int) {
	rows := g.orch.Rows()
	cols := g.orch.Cols()

	// Draw grid borders
	for y := 0; y < rows+1; y++ {
		for x := 0; x < cols+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, corner, platformcore.ColorGray)

			// Draw horizontal line to the right
			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, '─', platformcore.ColorGray)
				}
			}

			// Draw vertical line down
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, '│', platformcore.ColorGray)
				}
			}
		}
	}

	// Draw chips
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			px := boardX + c*cellWidth + 2
			py := boardY + r*cellHeight + 1

			chip := g.orch.ChipAt(r, c)
			if chip == nil {
				// A popped chip leaves a brief spark on its tile.
				if t, ok := g.fx.destroyAt(r, c); ok {
					dst.SetCell(px, py, destroyGlyph, chipColorBright(t))
				}
				continue
			}

			glyph := chipGlyph
			color := chipColor(chip.Type)
			if g.orch.Linked(chip) {
				glyph = linkedGlyph
				color = chipColorBright(chip.Type)
			} else if g.fx.highlightAt(r, c) {
				color = chipColorBright(chip.Type)
			}
			dst.SetCell(px, py, glyph, color)
		}
	}

	// Draw chain connectors between consecutive linked chips
	chain := g.orch.Chain()
	for i := 1; i < len(chain); i++ {
		a, b := chain[i-1].Tile(), chain[i].Tile()
		if a == nil || b == nil {
			continue
		}
		if a.Row() == b.Row() {
			bx := boardX + max(a.Col(), b.Col())*cellWidth
			by := boardY + a.Row()*cellHeight + 1
			dst.SetCell(bx, by, '═', platformcore.ColorBrightWhite)
		} else if a.Col() == b.Col() {
			bx := boardX + a.Col()*cellWidth + 2
			by := boardY + max(a.Row(), b.Row())*cellHeight
			dst.SetCell(bx, by, '║', platformcore.ColorBrightWhite)
		}
	}

	// Draw cursor
	curX := boardX + g.cursorCol*cellWidth
	curY := boardY + g.cursorRow*cellHeight + 1
	cursorColor := platformcore.ColorWhite
	if g.orch.Dragging() {
		cursorColor = platformcore.ColorBrightWhite
	}
	dst.SetCell(curX+1, curY, cursorLeft, cursorColor)
	dst.SetCell(curX+3, curY, cursorRight, cursorColor)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		level := GetLevel(g.levelIndex)
		clearStr := fmt.Sprintf("Level %d cleared!", g.levelIndex+1)
		if level != nil {
			clearStr = fmt.Sprintf("%s cleared!", level.Name)
		}
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, clearStr, "Final level complete!")
		} else {
			nextStr := fmt.Sprintf("Next: Level %d", g.levelIndex+2)
			g.drawOverlay(dst, centerX, centerY, clearStr, nextStr)
		}
		return
	}

	if g.won {
		finalStr := fmt.Sprintf("Final score: %d", g.totalScore())
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", finalStr, "Press R to restart")
		return
	}

	if g.fatalErr != nil {
		g.drawOverlay(dst, centerX, centerY, "BOARD ERROR", g.fatalErr.Error(), "Press R to restart")
		return
	}

	switch g.orch.State() {
	case core.StateLevelLost:
		scoreStr := fmt.Sprintf("Score: %d of %d", g.orch.Score().Current(), g.orch.Score().Target())
		g.drawOverlay(dst, centerX, centerY, "OUT OF TURNS", scoreStr, "Press R to restart")
	case core.StateShuffleFailed:
		finalStr := fmt.Sprintf("Final score: %d", g.totalScore())
		g.drawOverlay(dst, centerX, centerY, "NO MOVES LEFT", finalStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	// Draw box
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	// Draw border
	dst.DrawBox(platformcore.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	// Draw text
	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// textWidth counts runes, not bytes, so multibyte glyphs align.
func textWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Link/Pop | Mouse drag: Link | P: Pause | R: Restart | Q: Quit"
}
