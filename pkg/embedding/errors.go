package embedding

import "errors"

var (
	// ErrNoProviderConfigured indicates the embedding section of the config is empty.
	ErrNoProviderConfigured = errors.New("no embedding provider configured")

	// ErrUnknownProvider indicates the configured provider name is not supported.
	ErrUnknownProvider = errors.New("unknown embedding provider")
)
