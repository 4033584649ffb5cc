package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/safety-rules-config/internal/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

// DefaultChanSize is the async ring buffer size used by [DefaultConfig].
const DefaultChanSize = 256

const diodePollInterval = 10 * time.Millisecond

var (
	// ErrInvalidLevel is returned for a level name zerolog does not know.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidChanSize is returned when an async logger has no buffer.
	ErrInvalidChanSize = errors.New("async logger requires a positive chan_size")
)

// Config is the logging section of the safety rules configuration.
type Config struct {
	// ChanSize is the number of entries buffered by an async logger.
	ChanSize int `json:"chan_size"`
	// IsAsync moves writes off the caller's goroutine.
	IsAsync bool `json:"is_async"`
	// Level is the minimum level emitted: trace, debug, info, warn or error.
	// Matching is case-insensitive.
	Level string `json:"level"`
}

// DefaultConfig returns an async logger at info level.
func DefaultConfig() Config {
	return Config{
		ChanSize: DefaultChanSize,
		IsAsync:  true,
		Level:    zerolog.InfoLevel.String(),
	}
}

type configFields Config

// UnmarshalJSON decodes data over the current value of c. Keys must match
// exactly and none may be null.
func (c *Config) UnmarshalJSON(data []byte) error {
	decoded := configFields(*c)
	if err := utils.DecodeObject(data, &decoded); err != nil {
		return err
	}

	*c = Config(decoded)
	return nil
}

// ParseLevel returns the zerolog level named by c.Level. An empty level is
// info.
func (c Config) ParseLevel() (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	if name == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Level)
	}
	return level, nil
}

// Validate checks that [New] would accept c.
func (c Config) Validate() error {
	if _, err := c.ParseLevel(); err != nil {
		return err
	}
	if c.IsAsync && c.ChanSize <= 0 {
		return ErrInvalidChanSize
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (c Config) writer(w io.Writer) (io.Writer, io.Closer) {
	if !c.IsAsync || c.ChanSize <= 0 {
		return w, nopCloser{}
	}

	dw := diode.NewWriter(w, c.ChanSize, diodePollInterval, func(int) {})
	return &dw, &dw
}
