// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It wires the session client, the background wallet refresh job and
// terminal rendering into the flows behind each CLI command.
package client
