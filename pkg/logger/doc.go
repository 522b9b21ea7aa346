// Package logger builds the structured slog loggers used across formkit.
//
// New returns a *slog.Logger configured by functional options: output format
// (text or json), minimum level, static attributes and context extractors that
// copy request-scoped values into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "signup-form"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	log.Warn("unknown validator", logger.Field("person.age"), logger.Validator("uniqueEmail"))
//
// Library components never log unless a logger is handed to them; Discard
// returns the logger they fall back to.
//
// Attribute helpers in attr.go keep key names consistent: Field, Validator,
// FormID, Component, Language, Error and Errors. Error and Errors return an
// empty attribute for nil errors, so they can be passed unconditionally.
package logger
