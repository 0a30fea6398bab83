package runcfg

import (
	"errors"
	"sync"
)

// ErrNoContext is returned by Ambient when no ambient configuration has been
// installed.
var ErrNoContext = errors.New("no ambient runtime configuration")

var (
	ambientMu sync.RWMutex
	ambient   *Config
)

// SetAmbient installs cfg as the process-wide ambient configuration.
// Callers that resolve without an explicit Config fall back to it.
// Pass the Config you want visible; SetAmbient does not copy.
func SetAmbient(cfg *Config) {
	ambientMu.Lock()
	ambient = cfg
	ambientMu.Unlock()
}

// ClearAmbient removes the ambient configuration. Subsequent Ambient calls
// return ErrNoContext until SetAmbient is called again.
func ClearAmbient() {
	ambientMu.Lock()
	ambient = nil
	ambientMu.Unlock()
}

// Ambient returns the process-wide ambient configuration, or ErrNoContext if
// none is installed.
func Ambient() (*Config, error) {
	ambientMu.RLock()
	defer ambientMu.RUnlock()

	if ambient == nil {
		return nil, ErrNoContext
	}
	return ambient, nil
}
