// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the student sync client runtime.
//
// It wires configuration, tracing, the collection adapter and the sync
// engine together, and hands the engine either to the terminal UI or to a
// caller-supplied presentation sink for one-shot console commands.
package client
