// Package input decodes raw terminal bytes into game input: steering keys,
// start/quit/mute keys and SGR mouse reports.
package input

import (
	"bufio"
	"bytes"
	"strconv"
	"sync"
)

// maxSequenceLen bounds an unterminated escape sequence; anything longer is
// garbage and skipped.
const maxSequenceLen = 16

// Input represents the current frame's input state.
type Input struct {
	Quit  bool
	Start bool // Space or Enter
	Mute  bool // M toggles the bell
	Steer int  // Right presses minus left presses this frame

	Pointer Pointer
	Pressed []byte // Printable bytes seen this frame
}

// Pointer is the latest mouse report of the frame.
type Pointer struct {
	Active bool // At least one mouse report arrived
	Col    int  // 1-based terminal column
	Row    int  // 1-based terminal row
	Click  bool // Primary button went down
}

// Stream delivers input bytes via a channel and keeps incomplete escape
// sequences between frames.
type Stream struct {
	ch      chan byte
	done    chan struct{}
	stop    sync.Once
	pending []byte
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream until r fails or Stop is called.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 256), done: make(chan struct{})}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop tells the reader goroutine to exit once its next byte is read. It is
// safe to call more than once.
func (s *Stream) Stop() {
	s.stop.Do(func() { close(s.done) })
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream without blocking and
// decodes them. A closed stream reads as Quit.
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in, rest := Parse(buf)
	if len(rest) > 0 {
		s.pending = append([]byte(nil), rest...)
	}
	if s.closed {
		in.Quit = true
	}
	return in
}

// Parse decodes buf. Any incomplete escape sequence at the end is returned
// as rest so it can be completed by the next read.
func Parse(buf []byte) (in Input, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			applyByte(&in, b)
			continue
		}

		if i+1 >= len(buf) {
			return in, buf[i:]
		}
		switch buf[i+1] {
		case '[':
		case '\x1b':
			continue // Doubled escape; the second one starts the sequence
		default:
			i++ // Alt-modified key, dropped with its escape
			continue
		}
		if i+2 >= len(buf) {
			return in, buf[i:]
		}

		if buf[i+2] == '<' {
			n, ok := parseMouse(buf[i+3:], &in.Pointer)
			if !ok {
				return in, buf[i:]
			}
			i += 2 + n
			continue
		}

		n, final, ok := csiLength(buf[i+2:])
		if !ok {
			return in, buf[i:]
		}
		switch final {
		case 'C': // Right arrow, with or without modifiers
			in.Steer++
		case 'D': // Left arrow
			in.Steer--
		}
		i += 1 + n
	}
	return in, nil
}

// csiLength measures a CSI sequence body: parameter bytes (0x30-0x3F) and
// intermediate bytes (0x20-0x2F) up to a final byte (0x40-0x7E). It returns
// the bytes consumed and the final byte, which is 0 for a malformed body.
// ok is false when the sequence is not complete yet.
func csiLength(buf []byte) (n int, final byte, ok bool) {
	for j, b := range buf {
		switch {
		case b >= 0x20 && b <= 0x3f:
		case b >= 0x40 && b <= 0x7e:
			return j + 1, b, true
		default:
			return j, 0, true
		}
	}
	if len(buf) > maxSequenceLen {
		return len(buf), 0, true
	}
	return 0, 0, false
}

// parseMouse decodes the body of an SGR mouse report "b;x;yM" (or "m" on
// release) and returns the number of bytes consumed. ok is false when the
// report is not complete yet.
func parseMouse(buf []byte, p *Pointer) (n int, ok bool) {
	end := bytes.IndexAny(buf, "Mm")
	if end < 0 {
		// A report is never long; anything longer is garbage to be skipped.
		if len(buf) > maxSequenceLen {
			return len(buf), true
		}
		return 0, false
	}

	fields := bytes.Split(buf[:end], []byte{';'})
	if len(fields) != 3 {
		return end + 1, true
	}
	button, err1 := strconv.Atoi(string(fields[0]))
	col, err2 := strconv.Atoi(string(fields[1]))
	row, err3 := strconv.Atoi(string(fields[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return end + 1, true
	}

	p.Active = true
	p.Col = col
	p.Row = row
	const motionFlag, wheelFlag = 32, 64
	if buf[end] == 'M' && button&motionFlag == 0 && button&wheelFlag == 0 && button&3 == 0 {
		p.Click = true
	}
	return end + 1, true
}

// applyByte updates the input for a single plain byte.
func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', 3: // 3 is Ctrl+C in raw mode
		in.Quit = true
	case 'a', 'A':
		in.Steer--
	case 'd', 'D':
		in.Steer++
	case 'm', 'M':
		in.Mute = true
	case ' ', '\n', '\r':
		in.Start = true
	}
	if b >= 0x20 && b < 0x7f {
		in.Pressed = append(in.Pressed, b)
	}
}
