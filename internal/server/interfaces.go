// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the service's listeners.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received, then shuts
// the listeners down gracefully.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
