package main

import (
	"log/slog"
	"sync"

	"fnm/internal/config"
	"fnm/internal/logging"
)

// commandContext resolves the configuration once per invocation and shares
// it across subcommands.
type commandContext struct {
	configOnce sync.Once
	config     *config.Config
	configErr  error
	logger     *slog.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig(src config.Sources) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(src)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.logger = logging.NewStderr(cfg.LogLevel())
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	return c.config
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}
