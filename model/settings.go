package model

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/jsphweid/chordscales/constants"
)

var ErrUsage = errors.New("usage: chordscales [bpm] [seconds] [velocity]")

// Settings are the user-controlled parameters shared by every generated file.
type Settings struct {
	Tempo    int
	Seconds  int
	Velocity int
}

func DefaultSettings() Settings {
	return Settings{
		Tempo:    constants.DefaultTempo,
		Seconds:  constants.DefaultSeconds,
		Velocity: constants.DefaultVelocity,
	}
}

func (s Settings) Validate() error {
	if s.Tempo <= 0 {
		return errors.Errorf("tempo must be positive, got %v", s.Tempo)
	}
	if s.Seconds <= 0 {
		return errors.Errorf("seconds must be positive, got %v", s.Seconds)
	}
	if s.Velocity < 0 || s.Velocity > 127 {
		return errors.Errorf("velocity must be within 0-127, got %v", s.Velocity)
	}
	return nil
}

// ParseSettings reads "[bpm] [seconds] [velocity]". No args selects the
// defaults; anything other than zero or three integers is a usage error.
func ParseSettings(args []string) (Settings, error) {
	if len(args) == 0 {
		return DefaultSettings(), nil
	}
	if len(args) != 3 {
		return Settings{}, errors.Wrapf(ErrUsage, "got %d arguments", len(args))
	}

	var nums [3]int
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Settings{}, errors.Wrapf(ErrUsage, "%q is not an integer", arg)
		}
		nums[i] = n
	}

	s := Settings{Tempo: nums[0], Seconds: nums[1], Velocity: nums[2]}
	if err := s.Validate(); err != nil {
		return Settings{}, errors.Wrap(ErrUsage, err.Error())
	}
	return s, nil
}
