package logging

import (
	"go.uber.org/zap"
)

// New builds the process-wide logger. Development gets the human console
// encoder, everything else structured JSON.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
