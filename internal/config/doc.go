// Package config turns environment-style settings into the validated Settings
// consumed by the trading system. Settings are read from an explicit Env
// snapshot assembled from a YAML file, a .env file, the process environment and
// command-line overrides, in increasing order of precedence.
//
// Loading only coerces values into their types; trading and API bounds are
// enforced by the separate Validate methods so settings can be inspected
// before they are enforced.
package config
