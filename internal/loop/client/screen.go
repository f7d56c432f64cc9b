package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/giftdrop/internal/draw"
	"github.com/tomz197/giftdrop/internal/loop"
	"github.com/tomz197/giftdrop/internal/loop/config"
	"github.com/tomz197/giftdrop/internal/object"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.game.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.game.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	c.drawGround()
	for i := range c.game.Entities {
		c.drawEntity(&c.game.Entities[i])
	}
	c.drawPlayer(&c.game.Player)

	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI()

	return c.chunkWriter.Flush()
}

// drawGround fills the strip below the player's feet.
func (c *Client) drawGround() {
	p := c.game.Player
	top := p.Y + p.H*0.5
	c.canvas.FillRect(0, top, c.game.Screen.Width, c.game.Screen.Height-top, draw.ColorDim)
}

// drawEntity draws a gift as a wrapped box and a bomb as a solid block.
func (c *Client) drawEntity(e *object.Entity) {
	b := e.Bounds()
	switch e.Kind {
	case object.KindGift:
		c.canvas.StrokeRect(b.X, b.Y, b.W, b.H, draw.ColorYellow)
		c.canvas.DrawLine(e.X, b.Y, e.X, b.Y+b.H, draw.ColorRed)
		c.canvas.DrawLine(b.X, e.Y, b.X+b.W, e.Y, draw.ColorRed)
	case object.KindBomb:
		c.canvas.FillRect(b.X, b.Y, b.W, b.H, draw.ColorRed)
	}
}

// drawPlayer draws the catcher: a body with a head on top.
func (c *Client) drawPlayer(p *object.Player) {
	b := p.Bounds()
	head := b.W * 0.6
	c.canvas.FillRect(b.X, b.Y+head, b.W, b.H-head, draw.ColorCyan)
	c.canvas.FillRect(p.X-head*0.5, b.Y, head, head, draw.ColorWhite)
}

// writeText writes s at the canvas position and marks the cells so the
// canvas repaints them once the text is gone.
func (c *Client) writeText(col, row int, s string) {
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, draw.TextWidth(s))
}

// writeCentered writes s centered on column centerX.
func (c *Client) writeCentered(centerX, row int, s string) {
	c.writeText(centerX-draw.TextWidth(s)/2, row, s)
}

// drawUI draws the text overlay.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	c.drawHUD(termWidth)
	if c.state.Toast.Visible() {
		c.writeCentered(centerX, 3, c.state.Toast.Text())
	}

	switch c.game.GameState {
	case loop.GameStateIdle:
		c.drawStartScreen(centerX, centerY)
	case loop.GameStateOver:
		c.drawGameOverScreen(centerX, centerY)
	}
}

// drawHUD draws score and lives.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawHUD(termWidth int) {
	c.writeText(2, 1, fmt.Sprintf("Score: %-6d", c.game.Score))

	hearts := strings.Repeat("♥", max(c.game.Lives, 0))
	livesText := fmt.Sprintf("Lives: %-*s", c.game.Tuning.InitialLives, hearts)
	c.writeText(termWidth-draw.TextWidth(livesText), 1, livesText)

	bell := "Bell: off"
	if c.state.BellOn {
		bell = "Bell: on "
	}
	c.writeText(2, c.canvas.TerminalHeight(), bell)
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")
	c.writeCentered(centerX, centerY, fmt.Sprintf(
		"You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	))
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___ ___ ___ _____   ___  ___  ___  ___  `,
		` / __|_ _| __|_   _| |   \| _ \/ _ \| _ \ `,
		`| (_ || || _|  | |   | |) |   / (_) |  _/ `,
		` \___|___|_|   |_|   |___/|_|_\\___/|_|   `,
	}

	titleStartY := max(centerY-7, 2)
	for i, line := range titleArt {
		c.writeCentered(centerX, titleStartY+i, line)
	}

	c.writeCentered(centerX, titleStartY+len(titleArt)+1, "Catch the gifts 🎁  dodge the bombs 💣")

	controlsY := titleStartY + len(titleArt) + 3
	controlLines := []string{
		"A D / < >  . . . .  Move",
		"Mouse  . . . . . .  Move",
		"M  . . . . . Toggle bell",
		"Q  . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+i, line)
	}

	// Blinking start prompt, padded so the off phase erases it
	prompt := ">>  Press SPACE to Start  <<"
	if time.Now().UnixMilli()/600%2 != 0 {
		prompt = strings.Repeat(" ", len(prompt))
	}
	c.writeCentered(centerX, controlsY+len(controlLines)+1, prompt)
}

// drawGameOverScreen draws the game over screen.
func (c *Client) drawGameOverScreen(centerX, centerY int) {
	titleArt := []string{
		`  ___   _   __  __ ___    _____   _____ ___  `,
		` / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		`| (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		` \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}

	titleStartY := max(centerY-5, 2)
	for i, line := range titleArt {
		c.writeCentered(centerX, titleStartY+i, line)
	}

	c.writeCentered(centerX, titleStartY+len(titleArt)+1, fmt.Sprintf("Score: %d", c.game.Score))
	c.writeCentered(centerX, titleStartY+len(titleArt)+2, fmt.Sprintf("Best: %d", c.state.Best))

	prompt := ">>  Press SPACE to Restart  <<"
	if time.Now().UnixMilli()/600%2 != 0 {
		prompt = strings.Repeat(" ", len(prompt))
	}
	c.writeCentered(centerX, titleStartY+len(titleArt)+4, prompt)
}
