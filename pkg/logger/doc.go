// Package logger provides a small factory over Go's slog package configured
// by functional options: output format (text or json), minimum level, output
// destination, and static attributes. Defaults favor CLI use (text format on
// stderr) so rendered output on stdout stays machine-readable.
//
//	log := logger.New(
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithFormat(logger.Format(cfg.LogFormat)),
//	)
//	logger.SetAsDefault(log)
package logger
