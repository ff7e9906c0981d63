// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikas Malinauskas

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
