// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikas Malinauskas

// Package adapter provides transport-layer abstractions for communicating
// with the wortschatz server from client tooling.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mikas-m/wortschatz/models"
)

// ServerAdapter defines transport-agnostic communication with the wortschatz
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials. On success it stores the returned bearer token via
	// SetToken. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Login(ctx context.Context, user models.User) error

	// ListVerbs fetches the irregular-verbs reference table.
	ListVerbs(ctx context.Context) ([]models.IrregularVerb, error)

	// ImportVerbs replaces the server's irregular-verbs table with the given
	// rows in a single request and returns the number of rows imported.
	ImportVerbs(ctx context.Context, verbs []models.IrregularVerb) (int, error)
}
