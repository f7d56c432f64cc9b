// Package client runs one game in a terminal: it reads keys and mouse
// reports, advances the simulation and renders frames with ANSI output.
package client

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/giftdrop/internal/draw"
	"github.com/tomz197/giftdrop/internal/feedback"
	"github.com/tomz197/giftdrop/internal/input"
	"github.com/tomz197/giftdrop/internal/loop"
	"github.com/tomz197/giftdrop/internal/loop/config"
	"github.com/tomz197/giftdrop/internal/object"
	"github.com/tomz197/giftdrop/internal/sound"
)

// steerSteps is how many key presses it takes to cross the screen.
const steerSteps = 12

// Client handles rendering and input for a single terminal.
type Client struct {
	game         *loop.State
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates the frame for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	sink         feedback.Sink
	logger       *log.Logger
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Tuning       *config.Tuning // nil uses config.Default()
	Logger       *log.Logger    // nil uses the default logger
	Rand         *rand.Rand     // nil seeds from the clock
	Mute         bool           // Start with the bell off
}

// NewClient creates a client reading input from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	tuning := config.Default()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	screen := object.Screen{Width: config.ViewWidth, Height: config.ViewHeight}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, screen.Width, screen.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		game:         loop.NewState(screen, tuning, opts.Rand),
		state:        NewClientState(!opts.Mute),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		logger:       logger,
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
	}
	c.sink = feedback.Multi{
		&c.state.Toast,
		feedback.SinkFunc(c.ringBell),
		feedback.SinkFunc(c.logCue),
	}
	return c
}

// Run starts the client loop. Blocks until the player quits, the input
// ends or the session idles out.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	defer draw.ShowCursor(c.writer)
	defer draw.DisableMouse(c.writer)
	defer c.inputStream.Stop()
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		if err := c.frame(input.ReadInput(c.inputStream), delta); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	c.logger.Info("session ended", "best", c.state.Best, "state", c.game.GameState)
	draw.ClearScreen(c.writer)
	return nil
}

// frame runs one update-and-render pass.
func (c *Client) frame(in input.Input, delta time.Duration) error {
	c.state.delta = delta
	c.processInput(in)
	if !c.state.Running {
		return nil
	}

	c.updateScreen()
	feedback.Dispatch(c.sink, loop.Advance(c.game, delta))
	c.state.Best = max(c.state.Best, c.game.Score)
	c.state.Toast.Update(delta)

	return c.drawFrame()
}

// processInput applies this frame's input to the game.
func (c *Client) processInput(in input.Input) {
	c.state.Input = in

	if len(in.Pressed) > 0 || in.Steer != 0 || in.Pointer.Active {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting idle session")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if in.Quit {
		c.state.Running = false
		return
	}

	if in.Mute {
		c.state.BellOn = !c.state.BellOn
		if c.state.BellOn {
			c.state.Toast.Show("Bell on 🔔")
		} else {
			c.state.Toast.Show("Bell off 🔕")
		}
	}

	if in.Pointer.Active {
		c.game.SetTarget(c.canvas.TerminalToLogicalX(in.Pointer.Col))
	}
	if in.Steer != 0 {
		step := c.game.Screen.Width / steerSteps
		c.game.SetTarget(c.game.Player.TargetX + float64(in.Steer)*step)
	}

	if (in.Start || in.Pointer.Click) && !c.game.Running() {
		feedback.Dispatch(c.sink, loop.Start(c.game))
	}
}

// ringBell sounds the terminal bell for cues that have a tone.
func (c *Client) ringBell(cue feedback.Cue) {
	if c.state.BellOn && len(sound.ForCue(cue)) > 0 {
		draw.Bell(c.chunkWriter)
	}
}

// logCue records round boundaries.
func (c *Client) logCue(cue feedback.Cue) {
	switch cue {
	case feedback.CueGameStarted:
		c.logger.Info("round started")
	case feedback.CueGameOver:
		c.logger.Info("round over", "score", c.game.Score, "elapsed", c.game.Elapsed)
	default:
		c.logger.Debug("cue", "cue", cue, "score", c.game.Score, "lives", c.game.Lives)
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth == c.canvas.TerminalWidth() && renderHeight == c.canvas.TerminalHeight() &&
		offsetCol == c.canvas.OffsetCol() && offsetRow == c.canvas.OffsetRow() {
		return
	}

	c.chunkWriter.WriteString("\033[H\033[2J")
	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
