package config

import (
	"fmt"
	"time"
)

const (
	RegexFlagAdvisory      = "advisory"
	RegexFlagAuthoritative = "authoritative"
)

// Config holds user defaults. Fields left unset in a file do not override
// values from earlier files.
type Config struct {
	IgnoreCase   *bool  `yaml:"ignore_case" json:"ignore_case,omitempty"`
	Color        string `yaml:"color" json:"color,omitempty"`
	RegexFlag    string `yaml:"regex_flag" json:"regex_flag,omitempty"`
	RegexTimeout string `yaml:"regex_timeout" json:"regex_timeout,omitempty"`
	LogFile      string `yaml:"log_file" json:"log_file,omitempty"`
}

func (c Config) IgnoreCaseDefault() bool { return c.IgnoreCase != nil && *c.IgnoreCase }

// RegexAuthoritative reports whether -r decides the match kind instead of the
// needle's syntax.
func (c Config) RegexAuthoritative() bool { return c.RegexFlag == RegexFlagAuthoritative }

func (c Config) MatchTimeout() (time.Duration, error) {
	if c.RegexTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.RegexTimeout)
	if err != nil {
		return 0, fmt.Errorf("regex_timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("regex_timeout: negative duration %s", c.RegexTimeout)
	}
	return d, nil
}

// Validate checks what the JSON schema cannot express.
func (c Config) Validate() error {
	switch c.RegexFlag {
	case "", RegexFlagAdvisory, RegexFlagAuthoritative:
	default:
		return fmt.Errorf("regex_flag: unknown value %q", c.RegexFlag)
	}
	_, err := c.MatchTimeout()
	return err
}
