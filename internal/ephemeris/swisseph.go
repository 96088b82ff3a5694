package ephemeris

import (
	"strings"

	"github.com/mshafiee/swephgo"
	"github.com/pkg/errors"
)

// SwissEngine implements Engine over the swephgo cgo binding. The Swiss
// Ephemeris keeps its configuration in process-wide state, so only one
// SwissEngine should exist per process.
type SwissEngine struct{}

var _ Engine = (*SwissEngine)(nil)

// NewSwissEngine returns the Swiss Ephemeris backed engine.
func NewSwissEngine() *SwissEngine {
	return &SwissEngine{}
}

// SetEphePath points the Swiss Ephemeris at its data-file directory.
func (*SwissEngine) SetEphePath(path string) {
	swephgo.SetEphePath([]byte(path))
}

// SetSidMode selects the sidereal reference frame.
func (*SwissEngine) SetSidMode(mode int32, t0, ayanT0 float64) {
	swephgo.SetSidMode(int(mode), t0, ayanT0)
}

// CalcUT computes a body position at a UT Julian Day.
func (*SwissEngine) CalcUT(jd float64, body int, flags int32) ([6]float64, error) {
	xx := make([]float64, 6)
	serr := make([]byte, 256)

	ret := swephgo.CalcUt(jd, body, int(flags), xx, serr)
	if ret < 0 {
		msg := strings.TrimRight(string(serr), "\x00")
		return [6]float64{}, errors.Errorf("swiss ephemeris status %d: %s", ret, msg)
	}

	var out [6]float64
	copy(out[:], xx)
	return out, nil
}

// Close frees the Swiss Ephemeris file handles.
func (*SwissEngine) Close() error {
	swephgo.Close()
	return nil
}
