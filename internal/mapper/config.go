package mapper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	limg "github.com/ironsheep/lightpaint/internal/imaging"
)

// ErrConfig is matched by every configuration error.
var ErrConfig = errors.New("invalid configuration")

// ConfigError describes a malformed target color or tolerance.
type ConfigError struct {
	Field string // "color", "red", "green", "blue" or "tolerance"
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrConfig) true for any *ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

var channelNames = [3]string{"red", "green", "blue"}

// ParseColor parses exactly three decimal channel values in 0..255.
func ParseColor(channels ...string) (limg.RGBColor, error) {
	if len(channels) != 3 {
		return limg.RGBColor{}, &ConfigError{
			Field: "color",
			Value: strings.Join(channels, ","),
			Err:   fmt.Errorf("want 3 channels, got %d", len(channels)),
		}
	}

	var v [3]uint8
	for i, s := range channels {
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
		if err != nil {
			return limg.RGBColor{}, &ConfigError{Field: channelNames[i], Value: s, Err: unwrapNum(err)}
		}
		v[i] = uint8(n)
	}
	return limg.RGBColor{R: v[0], G: v[1], B: v[2]}, nil
}

// ParseHexColor parses a "#RRGGBB" target color.
func ParseHexColor(s string) (limg.RGBColor, error) {
	c, err := limg.ParseHexColor(s)
	if err != nil {
		return limg.RGBColor{}, &ConfigError{Field: "color", Value: s, Err: err}
	}
	return c, nil
}

// ParseTolerance parses a decimal tolerance.
func ParseTolerance(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ConfigError{Field: "tolerance", Value: s, Err: unwrapNum(err)}
	}
	return n, nil
}

// unwrapNum drops the strconv wrapper, whose message repeats the input.
func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
