// Package utils exposes reusable helpers consumed by the selector commands.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that integrate Viper,
// environment variables, and zap logging, plus the context accessor that carries the
// configuration file path and selection run identifiers between command layers.
package utils
