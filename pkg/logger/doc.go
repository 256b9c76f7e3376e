// Package logger builds slog loggers for services embedding the validation engine.
//
// New creates a *slog.Logger configured by Option functions: output format (text or
// json), minimum level, static attributes and ContextExtractor callbacks that pull
// values such as a locale or request id out of context.Context on every record.
//
// Attribute helpers (PassID, RuleID, Fields, Validator, Error, ...) keep key names
// consistent between the engine and its callers:
//
//	log := logger.New(logger.WithDevelopment("signup"))
//	engine := validation.New(registry, validation.WithLogger(log))
//
// Error and Errors return an empty attribute for nil errors, so they can be passed
// unconditionally.
package logger
