// Package choreography compiles timed ear and LED programs into the flat
// comma-separated payload the service expects in the chor parameter.
package choreography

import (
	"strconv"
	"strings"
)

// DefaultTempo is used when a program never calls Tempo, in events per
// second.
const DefaultTempo = 10

// Action kind codes on the wire.
const (
	kindMotor = 0
	kindLed   = 1
)

type action struct {
	time   int
	kind   int
	params [4]int
}

// Compiler accumulates one choreography program and encodes it. The time
// cursor starts at zero and advances by one tick after each leaf call,
// except inside Group and RepeatFor callbacks where leaves share a single
// timestamp. A Compiler is single-use and not safe for concurrent use.
type Compiler struct {
	tempo   int
	cursor  int
	grouped bool
	actions []action
}

func NewCompiler() *Compiler {
	return &Compiler{tempo: DefaultTempo}
}

// Tempo sets the playback speed in events per second. Non-positive values
// are ignored and the default kept.
func (c *Compiler) Tempo(hz int) {
	if hz > 0 {
		c.tempo = hz
	}
}

// MoveEar moves one or both ears forward to the given angle.
func (c *Compiler) MoveEar(ear string, angle int) error {
	return c.MoveEarDir(ear, angle, Forward)
}

// MoveEarDir moves one or both ears to the given angle in the given
// direction. EarBoth emits two records at the same timestamp but counts as
// a single leaf call for cursor advancement.
func (c *Compiler) MoveEarDir(ear string, angle int, direction string) error {
	dir, err := lookupDirection(direction)
	if err != nil {
		return err
	}

	if ear == EarBoth {
		c.record(kindMotor, earIndexes[EarLeft], angle, 0, dir)
		c.record(kindMotor, earIndexes[EarRight], angle, 0, dir)
	} else {
		idx, err := lookupEar(ear)
		if err != nil {
			return err
		}
		c.record(kindMotor, idx, angle, 0, dir)
	}

	c.step(1)
	return nil
}

// SetLed lights the named LED with a named color from the color table.
func (c *Compiler) SetLed(led, color string) error {
	rgb, err := lookupColor(color)
	if err != nil {
		return err
	}
	return c.setLed(led, rgb[0], rgb[1], rgb[2])
}

// SetLedRGB lights the named LED with an explicit RGB triple.
func (c *Compiler) SetLedRGB(led string, r, g, b int) error {
	return c.setLed(led, r, g, b)
}

func (c *Compiler) setLed(led string, r, g, b int) error {
	idx, err := lookupLed(led)
	if err != nil {
		return err
	}
	c.record(kindLed, idx, r, g, b)
	c.step(1)
	return nil
}

// Group runs fn as one simultaneous event: every leaf call inside shares
// the current timestamp, then the cursor advances by one tick.
func (c *Compiler) Group(fn func(*Compiler) error) error {
	return c.grouping(1, fn)
}

// RepeatFor runs fn like Group but advances the cursor by n ticks
// afterwards, holding the shared timestamp for n ticks of playback.
func (c *Compiler) RepeatFor(n int, fn func(*Compiler) error) error {
	return c.grouping(n, fn)
}

func (c *Compiler) grouping(n int, fn func(*Compiler) error) error {
	prev := c.grouped
	c.grouped = true
	err := fn(c)
	c.grouped = prev
	if err != nil {
		return err
	}
	c.step(n)
	return nil
}

func (c *Compiler) record(kind, p1, p2, p3, p4 int) {
	c.actions = append(c.actions, action{
		time:   c.cursor,
		kind:   kind,
		params: [4]int{p1, p2, p3, p4},
	})
}

// step advances the time cursor unless a surrounding Group or RepeatFor is
// holding it.
func (c *Compiler) step(n int) {
	if !c.grouped {
		c.cursor += n
	}
}

// Encode renders the program as the wire payload: the tempo followed by one
// six-field record per action. An empty program encodes as just the tempo.
func (c *Compiler) Encode() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(c.tempo))
	for _, a := range c.actions {
		for _, field := range []int{a.time, a.kind, a.params[0], a.params[1], a.params[2], a.params[3]} {
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(field))
		}
	}
	return b.String()
}
