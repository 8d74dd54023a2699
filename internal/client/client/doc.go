// Package client contains the CLI's connection to the standup sync server.
//
// # Overview
//
// The package provides:
//  1. The Client contract used by the remote entry store and the session:
//     SignIn/SignOut, Ping, entry mutations, the Subscribe snapshot stream
//     and export presigning.
//  2. GRPCClient, which attaches the access token as metadata, refreshes an
//     expired token once and retries, and maps gRPC status codes to sentinel
//     errors.
//  3. Local database bootstrap (InitDatabase, RunMigrations) applying the
//     embedded goose migrations to an SQLite file.
//
// # Error Handling
//
// Callers match ErrUnavailable, ErrUnauthorized and common.ErrorNotFound with
// errors.Is. Anything else is wrapped as "rpc error".
//
// GRPCClient is safe for concurrent use.
package client
