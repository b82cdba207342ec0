package scale

import (
	"github.com/pkg/errors"
)

// Degrees is the number of chords in a diatonic scale.
const Degrees = 7

var ErrUnknownScale = errors.New("unknown scale")

// Scale is a diatonic scale and the chords built on each of its degrees.
type Scale struct {
	Name   string
	Chords [Degrees]string
}

var byName = func() map[string]Scale {
	res := make(map[string]Scale, len(All))
	for _, s := range All {
		res[s.Name] = s
	}
	return res
}()

func Lookup(name string) (Scale, error) {
	s, ok := byName[name]
	if !ok {
		return Scale{}, errors.Wrapf(ErrUnknownScale, "%q", name)
	}
	return s, nil
}

// Names returns every scale name in generation order.
func Names() []string {
	res := make([]string, 0, len(All))
	for _, s := range All {
		res = append(res, s.Name)
	}
	return res
}
