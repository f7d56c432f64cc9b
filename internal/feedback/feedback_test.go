package feedback

import (
	"testing"
	"time"
)

func TestToastExpires(t *testing.T) {
	var toast Toast
	toast.Cue(CueGiftCollected)
	if !toast.Visible() || toast.Text() != "+1 🎁" {
		t.Fatalf("after cue: visible=%v text=%q", toast.Visible(), toast.Text())
	}

	toast.Update(ToastDuration - time.Millisecond)
	if !toast.Visible() {
		t.Fatal("toast hidden before its duration elapsed")
	}

	toast.Update(time.Millisecond)
	if toast.Visible() || toast.Text() != "" {
		t.Fatalf("after duration: visible=%v text=%q", toast.Visible(), toast.Text())
	}
}

func TestToastRestartsOnNewMessage(t *testing.T) {
	var toast Toast
	toast.Cue(CueGiftCollected)
	toast.Update(ToastDuration / 2)
	toast.Cue(CueBombHit)
	toast.Update(ToastDuration / 2)

	if !toast.Visible() {
		t.Fatal("new message should restart the timer")
	}
	if got := toast.Text(); got != "💣 -1" {
		t.Fatalf("text = %q, want bomb message", got)
	}
}

func TestMultiForwardsInOrder(t *testing.T) {
	var got []Cue
	record := SinkFunc(func(c Cue) { got = append(got, c) })

	Dispatch(Multi{record, nil, record}, []Cue{CueGameStarted, CueGameOver})

	want := []Cue{CueGameStarted, CueGameStarted, CueGameOver, CueGameOver}
	if len(got) != len(want) {
		t.Fatalf("got %d cues, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cue %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDispatchNilSink(t *testing.T) {
	Dispatch(nil, []Cue{CueBombHit})
}
