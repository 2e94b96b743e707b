package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

type Config struct {
	ListenAddr           string        `env:"GAME_BACKEND_LISTEN_ADDR,default=[::]:8080"`
	WebsocketAddr        string        `env:"GAME_BACKEND_WS_ADDR,default=[::]:8081"`
	InputInboxDepth      int           `env:"INPUT_INBOX_DEPTH,default=1"`
	MatchMaxDurationSecs int           `env:"MATCH_MAX_DURATION_SECS,default=1800"`
	FinishedGraceSecs    int           `env:"FINISHED_ROOM_GRACE_SECS,default=60"`
	WaitingTimeoutSecs   int           `env:"WAITING_ROOM_TIMEOUT_SECS,default=600"`
	SweepInterval        time.Duration `env:"SWEEP_INTERVAL,default=10s"`
	GatewayAddr          string        `env:"GATEWAY_ADDR"`
	GatewayNatsURL       string        `env:"GATEWAY_NATS_URL"`
	GatewaySendRetries   int           `env:"GATEWAY_SEND_RETRIES,default=3"`
	GatewayRetryBackoff  time.Duration `env:"GATEWAY_RETRY_BACKOFF,default=100ms"`
	GatewayCallTimeout   time.Duration `env:"GATEWAY_CALL_TIMEOUT,default=2s"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	BufferSize           int           `env:"BUFFER_SIZE,default=256"`
	LowCapacityThreshold int           `env:"LOW_CAPACITY_THRESHOLD,default=10"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=30s"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH"`
	ArchiveTTL           time.Duration `env:"ARCHIVE_TTL,default=0s"`
	NameCacheTTL         time.Duration `env:"NAME_CACHE_TTL,default=5m"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	DebugPort            int           `env:"DEBUG_PORT,default=0"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	switch {
	case c.InputInboxDepth < 1:
		return fmt.Errorf("INPUT_INBOX_DEPTH must be at least 1, got %d", c.InputInboxDepth)
	case c.MatchMaxDurationSecs <= 0:
		return fmt.Errorf("MATCH_MAX_DURATION_SECS must be positive, got %d", c.MatchMaxDurationSecs)
	case c.FinishedGraceSecs < 0:
		return fmt.Errorf("FINISHED_ROOM_GRACE_SECS must not be negative, got %d", c.FinishedGraceSecs)
	case c.SweepInterval <= 0:
		return fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	case c.GatewaySendRetries < 0:
		return fmt.Errorf("GATEWAY_SEND_RETRIES must not be negative, got %d", c.GatewaySendRetries)
	}
	_, err := CharacterRune(c.CharReplacement)
	return err
}

func (c Config) MatchMaxDuration() time.Duration {
	return time.Duration(c.MatchMaxDurationSecs) * time.Second
}

func (c Config) FinishedGrace() time.Duration {
	return time.Duration(c.FinishedGraceSecs) * time.Second
}

// WaitingTimeout is zero, meaning never, when WAITING_ROOM_TIMEOUT_SECS is 0.
func (c Config) WaitingTimeout() time.Duration {
	return time.Duration(c.WaitingTimeoutSecs) * time.Second
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
