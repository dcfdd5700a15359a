// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

// Package adapter provides transport-layer clients for the two external
// collaborators of the ghost console.
//
// The relay adapter ([NewRelayAdapter]) fronts the single fixed remote-action
// endpoint: a JSON POST multiplexed by a zone tag, with the response body
// always read as raw text. The backend adapter ([NewBackendAdapter]) speaks
// the hosted backend's REST dialect for table CRUD and object storage, and
// [NewRealtimeClient] maintains the websocket subscription for change
// notifications.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter
