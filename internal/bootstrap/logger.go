package bootstrap

import "go.uber.org/zap"

// NewLogger builds the process logger, installs it as the zap global and
// tags every entry with the binary name.
func NewLogger(production bool, process string) (*zap.Logger, error) {
	build := zap.NewDevelopment
	if production {
		build = zap.NewProduction
	}
	logger, err := build()
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("process", process))
	zap.ReplaceGlobals(logger)
	return logger, nil
}
