// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package appconfig resolves the configuration consumed by the portal
// front-end.
//
// Three sources feed a single process-wide [Config]:
//  1. the injected global configuration (loaded with [LoadInjected]);
//  2. a locally stored override applied through [Resolver.UpdateConfig];
//  3. the server configuration delivered by the remote configuration
//     service, applied through [Resolver.SetServerConfig].
//
// The [Config] returned by [Resolver.Config] keeps its identity for the
// lifetime of the resolver: every operation mutates it in place, so a
// consumer holding the pointer always sees the resolved state.
//
// A Resolver is not safe for concurrent use. Resolution is expected to
// finish on one goroutine before the configuration is shared; after that
// the Config is read-only. The memoized parsers ([Helpers]) are safe for
// concurrent use.
package appconfig
