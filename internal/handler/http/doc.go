// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the campus lost-and-found
// service.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: trace ids, access logging, Prometheus instrumentation, CORS,
// per-IP rate limiting, gzip and bearer token authentication. Service errors
// are translated to {"detail": ...} responses by writeError.
package http
