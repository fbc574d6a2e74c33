package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/stagehand/internal/application/input"
	"github.com/younwookim/stagehand/internal/domain/event"
)

// Replayer handles input playback from recorded data.
//
// The input side advances one frame per Poll. The event side returns the
// events recorded for the frame most recently returned by the input side,
// and a window-close once the recording is exhausted.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from r.
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// Poll returns the snapshot for the next frame, or an empty one past the end.
func (r *Replayer) Poll() input.Snapshot {
	if r.frame >= len(r.data.Frames) {
		r.frame = len(r.data.Frames) + 1
		return input.Snapshot{}
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	snap := input.Snapshot{CursorX: fi.MX, CursorY: fi.MY}
	for _, k := range fi.K {
		snap.Keys = append(snap.Keys, ebiten.Key(k))
	}
	for _, b := range fi.B {
		snap.Buttons = append(snap.Buttons, ebiten.MouseButton(b))
	}
	return snap
}

// Events returns the event side of the replay.
func (r *Replayer) Events() EventSource {
	return replayEvents{r: r}
}

// Done reports whether every recorded frame has been played.
func (r *Replayer) Done() bool {
	return r.frame > len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return min(r.frame, len(r.data.Frames))
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Data returns the replay data being played.
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

type replayEvents struct {
	r *Replayer
}

func (e replayEvents) Poll() []event.Event {
	if e.r.Done() {
		return []event.Event{event.WindowClose()}
	}
	if e.r.frame == 0 {
		return nil
	}
	recs := e.r.data.Frames[e.r.frame-1].E
	if len(recs) == 0 {
		return nil
	}
	events := make([]event.Event, 0, len(recs))
	for _, rec := range recs {
		events = append(events, event.Event{Kind: event.Kind(rec.T), Key: ebiten.Key(rec.K)})
	}
	return events
}

// WithLiveQuit merges the quit requests of a live event source into the
// recorded events so a player can stop a replay early. Every other live
// event is dropped.
func WithLiveQuit(live, recorded EventSource) EventSource {
	return liveQuitEvents{live: live, recorded: recorded}
}

type liveQuitEvents struct {
	live     EventSource
	recorded EventSource
}

func (e liveQuitEvents) Poll() []event.Event {
	var events []event.Event
	for _, ev := range e.live.Poll() {
		if ev.IsQuit() {
			events = append(events, ev)
		}
	}
	return append(events, e.recorded.Poll()...)
}

// CreateTestReplayData creates replay data for testing (idle input)
func CreateTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version: Version,
		Session: "test-session",
		Scene:   "test",
		FPS:     60,
		Frames:  make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
