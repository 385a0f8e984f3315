// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client drives a running campus-found server through its public
// API.
//
// [SmokeRun] walks the full item lifecycle the way students and staff use it:
// report, photo upload, claim with the hidden detail, staff review and
// pickup. Every step goes through [adapter.CampusAPI], so the run exercises
// routing, auth, persistence and photo storage together.
package client
