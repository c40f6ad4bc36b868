package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,required=true" validate:"required,oneof=DEBUG INFO WARN ERROR"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true" validate:"required"`

	// Poll constants, injected rather than hardcoded so tests and demos can
	// compress the window.
	PollWindow       time.Duration `env:"POLL_WINDOW,default=60s" validate:"gt=0"`
	PollSafetyMargin time.Duration `env:"POLL_SAFETY_MARGIN,default=1s" validate:"gt=0"`
	QuorumFraction   float64       `env:"QUORUM_FRACTION,default=0.5" validate:"gt=0,lte=1"`

	CharReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=30s" validate:"gt=0"`
	DebugPort       int           `env:"DEBUG_PORT,default=8081" validate:"gt=0,lt=65536"`
	ServerID        string        `env:"SERVER_ID,default=demo-server"`
}

func (c Config) Validate() error {
	return validate.Struct(c)
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
