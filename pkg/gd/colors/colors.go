package colors

import (
	"errors"
	"fmt"
)

var (
	ErrComponent = errors.New("colors: rgb component out of range")
	ErrRange     = errors.New("colors: packed color out of range")
	ErrNoInput   = errors.New("colors: no color given")
)

const maxPacked = 0xFFFFFF

// Color is a packed 0xRRGGBB value.
type Color uint32

func FromRGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) Value() int {
	return int(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&maxPacked)
}

// Input is anything SetColor accepts. The set of implementations is
// closed: Triple, Color and Number.
type Input interface {
	resolve() (Color, error)
}

// Triple is a color given as three separate RGB components.
type Triple [3]int

func (t Triple) resolve() (Color, error) {
	for _, component := range t {
		if component < 0 || component > 255 {
			return 0, fmt.Errorf("%w: %d", ErrComponent, component)
		}
	}
	return FromRGB(uint8(t[0]), uint8(t[1]), uint8(t[2])), nil
}

func (c Color) resolve() (Color, error) {
	if c > maxPacked {
		return 0, fmt.Errorf("%w: %#x", ErrRange, uint32(c))
	}
	return c, nil
}

// Number is a raw numeric color such as 0xff8000.
type Number int

func (n Number) resolve() (Color, error) {
	if n < 0 || n > maxPacked {
		return 0, fmt.Errorf("%w: %d", ErrRange, int(n))
	}
	return Color(n), nil
}

// Resolve normalizes any color input to a packed color.
func Resolve(input Input) (Color, error) {
	if input == nil {
		return 0, ErrNoInput
	}
	return input.resolve()
}
