// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - UpdateStatusRequest: status, optional section, optional actor
  - LoginRequest: actor, optional sections

# Response Types

Types for JSON responses:

  - UpdateStatusResponse: id, status, section, message
  - LoginResponse: session_id, actor
  - PredioDetail: predio, effective_section, history
  - SectionSummary: section, rojo, azul, neutral, total
  - ActorActivity: actor, last_seen, sections
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Predio: current parcel state (one row per id)
  - ChangeEvent: immutable status-change record
  - Session: one actor login row

# Constants

Status values:

	StatusRojo    = "rojo"
	StatusAzul    = "azul"
	StatusNeutral = "neutral"

Reporting bucket for parcels with no known section:

	SectionUnknown = "sin seccion"
*/
package models
