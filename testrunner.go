package arplace

import (
	"fmt"
	"strings"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action  string  `yaml:"action"`
	Mode    string  `yaml:"mode,omitempty"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	ToX     float64 `yaml:"toX,omitempty"`
	ToY     float64 `yaml:"toY,omitempty"`
	Spread  float64 `yaml:"spread,omitempty"`
	From    float64 `yaml:"from,omitempty"`
	To      float64 `yaml:"to,omitempty"`
	Radius  float64 `yaml:"radius,omitempty"`
	Degrees float64 `yaml:"degrees,omitempty"`
	Frames  int     `yaml:"frames,omitempty"`
	Ease    string  `yaml:"ease,omitempty"`
}

// gestureScript is the top-level structure of a gesture script.
type gestureScript struct {
	Steps []scriptStep `yaml:"steps"`
}

var easeFuncs = map[string]ease.TweenFunc{
	"":          ease.Linear,
	"linear":    ease.Linear,
	"inquad":    ease.InQuad,
	"outquad":   ease.OutQuad,
	"inoutquad": ease.InOutQuad,
	"incubic":   ease.InCubic,
	"outcubic":  ease.OutCubic,
	"inoutsine": ease.InOutSine,
}

// ScriptRunner sequences injected gestures and mode changes across frames.
// Scripts are YAML; JSON scripts parse as well.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a gesture script and returns a runner ready to be
// stepped alongside a Session.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: %w", ErrNoSteps)
	}
	for i, st := range script.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

func validateStep(st scriptStep) error {
	switch st.Action {
	case "mode":
		_, err := ParseMode(st.Mode)
		return err
	case "tap", "doubletap", "wait", "reset":
	case "pan", "pinch", "twist":
		if _, ok := easeFuncs[strings.ToLower(st.Ease)]; !ok {
			return fmt.Errorf("unknown ease %q", st.Ease)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, st.Action)
	}
	return nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Call it before in.Next each frame.
func (r *ScriptRunner) Step(s *Session, in *TouchInput) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if in.Pending() > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	center := Vec2{X: st.X, Y: st.Y}
	fn := easeFuncs[strings.ToLower(st.Ease)]
	switch st.Action {
	case "mode":
		m, _ := ParseMode(st.Mode)
		s.SetMode(m)
	case "tap":
		in.InjectTap(center)
	case "doubletap":
		in.InjectDoubleTap(center)
	case "pan":
		in.InjectPan(center, Vec2{X: st.ToX, Y: st.ToY}, st.Spread, st.Frames, fn)
	case "pinch":
		in.InjectPinch(center, st.From, st.To, st.Frames, fn)
	case "twist":
		in.InjectTwist(center, st.Radius, st.Degrees, st.Frames, fn)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "reset":
		s.Reset()
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}

// TickClock is a monotonic frame clock advanced once per update.
type TickClock struct {
	TPS   int
	ticks int64
}

// Tick advances the clock by one frame and returns the new time.
func (c *TickClock) Tick() time.Duration {
	c.ticks++
	return c.Now()
}

// Now returns the time of the current frame.
func (c *TickClock) Now() time.Duration {
	tps := c.TPS
	if tps <= 0 {
		tps = 60
	}
	return time.Duration(c.ticks) * time.Second / time.Duration(tps)
}

// Replay drives s with r until the script finishes and every injected frame
// is consumed, or maxFrames elapse. Returns the number of frames run.
func Replay(s *Session, in *TouchInput, r *ScriptRunner, clock *TickClock, maxFrames int) int {
	frames := 0
	for frames < maxFrames && !(r.Done() && in.Pending() == 0) {
		r.Step(s, in)
		s.Update(in.Next(clock.Tick()))
		frames++
	}
	return frames
}
