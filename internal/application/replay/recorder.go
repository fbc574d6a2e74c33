package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/younwookim/stagehand/internal/application/input"
	"github.com/younwookim/stagehand/internal/domain/event"
)

// ErrNoFrames is returned when saving an empty recording.
var ErrNoFrames = errors.New("no frames to save")

// EventSource yields the events queued since the last Poll.
type EventSource interface {
	Poll() []event.Event
}

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a session starting at scene.
func NewRecorder(scene string, fps int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Session:   uuid.NewString(),
			Scene:     scene,
			FPS:       fps,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame starts a new frame from an input snapshot.
func (r *Recorder) RecordFrame(snap input.Snapshot) {
	if !r.recording {
		return
	}

	fi := FrameInput{
		F:  r.frame,
		MX: snap.CursorX,
		MY: snap.CursorY,
	}
	for _, k := range snap.Keys {
		fi.K = append(fi.K, int(k))
	}
	for _, b := range snap.Buttons {
		fi.B = append(fi.B, int(b))
	}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// RecordEvents attaches events to the most recent frame.
// Events polled before any frame was recorded are dropped.
func (r *Recorder) RecordEvents(events []event.Event) {
	if !r.recording || len(r.data.Frames) == 0 {
		return
	}
	last := &r.data.Frames[len(r.data.Frames)-1]
	for _, e := range events {
		last.E = append(last.E, EventRecord{T: int(e.Kind), K: int(e.Key)})
	}
}

// Source wraps inner so every polled snapshot is recorded.
func (r *Recorder) Source(inner input.Source) input.Source {
	return recordedSource{inner: inner, r: r}
}

// Events wraps inner so every polled event is recorded.
func (r *Recorder) Events(inner EventSource) EventSource {
	return recordedEvents{inner: inner, r: r}
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.WriteTo(file)
}

// WriteTo encodes the replay data as indented JSON.
func (r *Recorder) WriteTo(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}

type recordedSource struct {
	inner input.Source
	r     *Recorder
}

func (s recordedSource) Poll() input.Snapshot {
	snap := s.inner.Poll()
	s.r.RecordFrame(snap)
	return snap
}

type recordedEvents struct {
	inner EventSource
	r     *Recorder
}

func (s recordedEvents) Poll() []event.Event {
	events := s.inner.Poll()
	s.r.RecordEvents(events)
	return events
}
