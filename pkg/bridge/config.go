package bridge

import (
	"fmt"
	"net/url"
	"time"
)

// Transport types a bridge endpoint can use.
const (
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
)

// Defaults and floors for bridge options.
const (
	DefaultTimeoutMS = 30000
	MinTimeoutMS     = 1000
	DefaultRetries   = 3
)

// EndpointConfig describes one side of the bridge. Stdio endpoints use
// Command/Args/Env; streamable-HTTP endpoints use URL (source) or
// ListenAddr (target).
type EndpointConfig struct {
	Type       string            `yaml:"type"`
	Command    string            `yaml:"command,omitempty"`
	Args       []string          `yaml:"args,omitempty"`
	Env        map[string]string `yaml:"env,omitempty"`
	URL        string            `yaml:"url,omitempty"`
	Headers    map[string]string `yaml:"headers,omitempty"`
	ListenAddr string            `yaml:"listenAddr,omitempty"`
}

// Options tunes the bridge's connect path.
type Options struct {
	// TimeoutMS bounds each connect attempt, in milliseconds. Values below
	// MinTimeoutMS are rejected; zero selects DefaultTimeoutMS.
	TimeoutMS int `yaml:"timeout"`
	// Retries is the number of connect attempts. Zero selects
	// DefaultRetries; negative values are rejected.
	Retries int `yaml:"retries"`
	// Logging enables per-request proxy logging.
	Logging bool `yaml:"logging"`
}

// timeout returns the per-attempt deadline as a duration.
func (o Options) timeout() time.Duration {
	return time.Duration(o.TimeoutMS) * time.Millisecond
}

// Config is the full bridge configuration: expose Target, proxy to Source.
type Config struct {
	Source  EndpointConfig `yaml:"source"`
	Target  EndpointConfig `yaml:"target"`
	Options Options        `yaml:"options"`
}

// Validate checks the configuration and applies option defaults in place.
func (c *Config) Validate() error {
	if err := validateEndpoint("source", c.Source); err != nil {
		return err
	}
	if err := validateEndpoint("target", c.Target); err != nil {
		return err
	}
	if c.Source.Type == c.Target.Type {
		return fmt.Errorf("%w: both are %q", ErrSameTransport, c.Source.Type)
	}

	if c.Source.Type == TransportStreamableHTTP {
		parsed, err := url.Parse(c.Source.URL)
		if err != nil {
			return fmt.Errorf("source url %q: %w", c.Source.URL, err)
		}
		if parsed.Scheme != "https" {
			return fmt.Errorf("%w: got %q", ErrPlaintextSource, c.Source.URL)
		}
	}

	switch {
	case c.Options.TimeoutMS == 0:
		c.Options.TimeoutMS = DefaultTimeoutMS
	case c.Options.TimeoutMS < MinTimeoutMS:
		return fmt.Errorf("bridge timeout %dms below minimum %dms",
			c.Options.TimeoutMS, MinTimeoutMS)
	}
	switch {
	case c.Options.Retries == 0:
		c.Options.Retries = DefaultRetries
	case c.Options.Retries < 0:
		return fmt.Errorf("bridge retries must not be negative, got %d",
			c.Options.Retries)
	}
	return nil
}

func validateEndpoint(role string, e EndpointConfig) error {
	switch e.Type {
	case TransportStdio:
		if role == "source" && e.Command == "" {
			return fmt.Errorf("stdio source requires a command")
		}
	case TransportStreamableHTTP:
		if role == "source" && e.URL == "" {
			return fmt.Errorf("streamable-http source requires a url")
		}
		if role == "target" && e.ListenAddr == "" {
			return fmt.Errorf("streamable-http target requires a listenAddr")
		}
	default:
		return fmt.Errorf("%s: unsupported transport type %q", role, e.Type)
	}
	return nil
}
