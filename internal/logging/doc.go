// Package logging builds the slog loggers used by mcphub.
//
// The CLI writes a one-line text format to stderr, or JSON with
// --log-format json, and can mirror every record as JSON to --log-file.
// Every output masks attributes that look like credentials, so header
// values and tokens from installed servers never reach a log unmasked:
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//		File:   f,
//	})
//	logger.Info("server added", "name", "stripe", "Authorization", "Bearer sk_live_123")
//	// 3:04PM INFO  server added name=stripe Authorization=Bearer ****_123
//
// Loggers travel through context.Context with [NewContext] and
// [FromContext]. Tests use [ForTest] to route output through t.Log.
package logging
