package models

import "time"

// Parcel status constants
const (
	StatusRojo    = "rojo"
	StatusAzul    = "azul"
	StatusNeutral = "neutral"
)

// SectionUnknown is the reporting bucket for parcels whose section cannot
// be determined from the current row or the change log. It sorts among
// the real section labels as plain text.
const SectionUnknown = "sin seccion"

// ValidStatus reports whether s is one of the three recognized status values.
func ValidStatus(s string) bool {
	return s == StatusRojo || s == StatusAzul || s == StatusNeutral
}

// Request types

type UpdateStatusRequest struct {
	Status  string  `json:"status"`
	Section *string `json:"section,omitempty"`
	Actor   *string `json:"actor,omitempty"`
}

type LoginRequest struct {
	Actor    string   `json:"actor"`
	Sections []string `json:"sections,omitempty"`
}

// Response types

type UpdateStatusResponse struct {
	ID      string  `json:"id"`
	Status  string  `json:"status"`
	Section *string `json:"section,omitempty"`
	Message string  `json:"message"`
}

type LoginResponse struct {
	SessionID string `json:"session_id"`
	Actor     string `json:"actor"`
}

type PredioDetail struct {
	Predio           Predio        `json:"predio"`
	EffectiveSection string        `json:"effective_section"`
	History          []ChangeEvent `json:"history"`
}

type SectionSummary struct {
	Section string `json:"section"`
	Rojo    int    `json:"rojo"`
	Azul    int    `json:"azul"`
	Neutral int    `json:"neutral"`
	Total   int    `json:"total"`
}

type ActorActivity struct {
	Actor    string    `json:"actor"`
	LastSeen time.Time `json:"last_seen"`
	Sections string    `json:"sections"`
}

// Domain types

type Predio struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Section   *string   `json:"section,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChangeEvent struct {
	ID        string    `json:"id"`
	PredioID  string    `json:"predio_id"`
	Status    string    `json:"status"`
	Section   *string   `json:"section,omitempty"`
	Actor     *string   `json:"actor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Sections  string    `json:"sections"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
