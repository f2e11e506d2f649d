package config

import (
	"fmt"
	"time"

	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
)

// Model definition for configuration

// Config is the application's configuration
type Config struct {
	Config    string
	Port      string
	LogFile   string
	LogConfig lumber.LoggingConfig
	Env       string
	Verbose   bool
	Jenkins   Jenkins
	Watch     Watch
}

// Jenkins provides the location and credentials of the jenkins server.
type Jenkins struct {
	Transport  string `json:"transport" validate:"oneof=http https"`
	Host       string `json:"host" validate:"required"`
	Port       int    `json:"port" validate:"min=0,max=65535"`
	Path       string `json:"path"`
	User       string `json:"user"`
	Token      string `json:"token"`
	Timeout    int    `json:"timeout" validate:"min=0"`
	MaxRetries int    `json:"maxRetries" validate:"min=0"`
}

// Watch configures the background polling of watched targets.
type Watch struct {
	Schedule    string `json:"schedule"`
	TargetsFile string `json:"targetsFile"`
}

// BaseURL returns the root url of the jenkins server, always ending with a slash
func (j *Jenkins) BaseURL() string {
	if j.Port == 0 {
		return fmt.Sprintf("%s://%s/", j.Transport, j.Host)
	}
	return fmt.Sprintf("%s://%s:%d/", j.Transport, j.Host, j.Port)
}

// RequestTimeout returns the per request timeout
func (j *Jenkins) RequestTimeout() time.Duration {
	if j.Timeout <= 0 {
		return global.DefaultHTTPTimeout
	}
	return time.Duration(j.Timeout) * time.Second
}
