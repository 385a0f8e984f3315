// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the campus-found HTTP server.
//
// It owns the server lifecycle: listening, signal handling and graceful
// shutdown with a bounded drain period.
package server
