// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the client services, and the background
// notification poller into a single process lifecycle: the poller follows
// the session, running only while a user is signed in.
package client
