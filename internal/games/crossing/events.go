package crossing

// Cue identifies a discrete notification for the audio/status sink.
type Cue string

const (
	CueWin      Cue = "win"
	CueDie      Cue = "die"
	CueCollect  Cue = "collect"
	CueGoalOpen Cue = "goal-open"
)

// Hooks are the fire-and-forget sinks the session reports to.
// Nil fields are skipped.
type Hooks struct {
	// Notify receives a cue and a human-readable status line.
	Notify func(cue Cue, text string)

	// End is called once with the final score when the player runs out of lives.
	End func(score int)
}

// Direction is a decoded input token.
type Direction string

const (
	DirectionNone  Direction = ""
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// ParseDirection maps an input token to a Direction.
// Unknown tokens map to DirectionNone and false.
func ParseDirection(token string) (Direction, bool) {
	switch d := Direction(token); d {
	case DirectionLeft, DirectionRight, DirectionUp, DirectionDown:
		return d, true
	default:
		return DirectionNone, false
	}
}

// Canvas reports the current drawable size in pixels.
// It is queried on every bounds check, so implementations may change size
// between frames.
type Canvas interface {
	Size() (width, height float64)
}

// FixedCanvas is a Canvas with a constant size.
type FixedCanvas struct {
	Width, Height float64
}

// Size implements Canvas.
func (c FixedCanvas) Size() (float64, float64) {
	return c.Width, c.Height
}

// CanvasFunc adapts a function to the Canvas interface.
type CanvasFunc func() (float64, float64)

// Size implements Canvas.
func (f CanvasFunc) Size() (float64, float64) {
	return f()
}
