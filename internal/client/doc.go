// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the meal-log client runtime.
//
// It wires the local storage, the meal API adapter, the terminal notifier,
// the client services and the CSV import workers into one App that the CLI
// commands share for the duration of a process.
package client
