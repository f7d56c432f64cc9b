package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		check func(Input) bool
	}{
		{"quit", "q", func(in Input) bool { return in.Quit }},
		{"ctrl-c", "\x03", func(in Input) bool { return in.Quit }},
		{"space starts", " ", func(in Input) bool { return in.Start }},
		{"enter starts", "\r", func(in Input) bool { return in.Start }},
		{"mute", "m", func(in Input) bool { return in.Mute }},
		{"left arrow", "\x1b[D", func(in Input) bool { return in.Steer == -1 }},
		{"right arrow", "\x1b[C", func(in Input) bool { return in.Steer == 1 }},
		{"wasd", "ddda", func(in Input) bool { return in.Steer == 2 }},
		{"up arrow ignored", "\x1b[A", func(in Input) bool { return in.Steer == 0 && !in.Quit }},
		{"shift left", "\x1b[1;2D", func(in Input) bool { return in.Steer == -1 }},
		{"ctrl right", "\x1b[1;5C", func(in Input) bool { return in.Steer == 1 }},
		{"alt q ignored", "\x1bq", func(in Input) bool { return !in.Quit && len(in.Pressed) == 0 }},
		{"alt then arrow", "\x1b\x1b[C", func(in Input) bool { return in.Steer == 1 }},
		{"delete key ignored", "\x1b[3~", func(in Input) bool { return in.Steer == 0 && !in.Quit && len(in.Pressed) == 0 }},
		{"key after modified arrow", "\x1b[1;2Dd", func(in Input) bool { return in.Steer == 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, rest := Parse([]byte(tt.in))
			if len(rest) != 0 {
				t.Fatalf("unexpected leftover %q", rest)
			}
			if !tt.check(in) {
				t.Fatalf("Parse(%q) = %+v", tt.in, in)
			}
		})
	}
}

func TestParseMouse(t *testing.T) {
	in, rest := Parse([]byte("\x1b[<35;40;12M"))
	if len(rest) != 0 {
		t.Fatalf("unexpected leftover %q", rest)
	}
	if !in.Pointer.Active || in.Pointer.Col != 40 || in.Pointer.Row != 12 {
		t.Fatalf("pointer = %+v, want motion at 40,12", in.Pointer)
	}
	if in.Pointer.Click {
		t.Fatal("motion report must not count as click")
	}

	in, _ = Parse([]byte("\x1b[<0;5;6M"))
	if !in.Pointer.Click || in.Pointer.Col != 5 {
		t.Fatalf("pointer = %+v, want click at column 5", in.Pointer)
	}

	in, _ = Parse([]byte("\x1b[<0;5;6m"))
	if in.Pointer.Click {
		t.Fatal("release must not count as click")
	}

	in, _ = Parse([]byte("\x1b[<64;5;6M"))
	if in.Pointer.Click {
		t.Fatal("wheel must not count as click")
	}
}

func TestParseLastPointerWins(t *testing.T) {
	in, _ := Parse([]byte("\x1b[<35;10;1M\x1b[<35;20;1Mq"))
	if in.Pointer.Col != 20 {
		t.Fatalf("Col = %d, want 20", in.Pointer.Col)
	}
	if !in.Quit {
		t.Fatal("key after mouse report was lost")
	}
}

func TestParseIncompleteSequence(t *testing.T) {
	for _, partial := range []string{"\x1b", "\x1b[", "\x1b[1;2", "\x1b[<35;4"} {
		in, rest := Parse([]byte("d" + partial))
		if in.Steer != 1 {
			t.Fatalf("%q: Steer = %d, want 1", partial, in.Steer)
		}
		if string(rest) != partial {
			t.Fatalf("%q: rest = %q", partial, rest)
		}
	}
}

func TestReadInputJoinsSplitSequence(t *testing.T) {
	s := &Stream{ch: make(chan byte, 16)}
	for _, b := range []byte("\x1b[<35;4") {
		s.ch <- b
	}
	if in := ReadInput(s); in.Pointer.Active {
		t.Fatal("pointer reported before the sequence completed")
	}
	for _, b := range []byte("2;3M") {
		s.ch <- b
	}
	in := ReadInput(s)
	if !in.Pointer.Active || in.Pointer.Col != 42 {
		t.Fatalf("pointer = %+v, want column 42", in.Pointer)
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))
	deadline := time.Now().Add(time.Second)
	for !s.Closed() && time.Now().Before(deadline) {
		in := ReadInput(s)
		if in.Quit {
			return
		}
		time.Sleep(time.Millisecond)
	}
	if !ReadInput(s).Quit {
		t.Fatal("closed stream should read as quit")
	}
}

type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}

func TestStopReleasesReader(t *testing.T) {
	s := StartStream(bufio.NewReader(endlessReader{}))
	s.Stop()
	s.Stop()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("reader goroutine still sending after Stop")
		}
	}
}
