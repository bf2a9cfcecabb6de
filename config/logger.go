package config

import "go.uber.org/zap"

// NewLogger returns a production logger in production and a development
// logger everywhere else.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
