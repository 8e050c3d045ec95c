// Package logging provides structured logging for churnform.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless a level is given, either through Options.Level (the
// --log-level flag or the settings file) or the CHURNFORM_LOG_LEVEL
// environment variable.
//
// # Output
//
// The interactive form draws on the terminal, so it logs to a file:
//
//	if err := logging.Initialize(logging.Options{
//	    Level:      "debug",
//	    OutputPath: "/home/me/.config/churnform/churnform.log",
//	}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// One-shot commands may log to stderr.
//
// # Prediction Logging
//
//	logging.LogPredictRequest(requestID, url, len(body))
//	logging.LogPredictResponse(requestID, resp.StatusCode, len(respBody), elapsed)
//
// Every request carries an X-Request-ID; the same id appears in the
// request and response entries.
package logging
