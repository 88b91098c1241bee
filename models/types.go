// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Voting status constants
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Request types

// categoryID -> nomineeIndex (position in the catalog's nominee list)
type SubmitBallotRequest struct {
	Email      string         `json:"email"`
	Selections map[string]int `json:"selections"`
}

// Response types

type SubmitBallotResponse struct {
	Recorded int    `json:"recorded"`
	Message  string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type TransitionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ResetResponse struct {
	ArchiveID   string `json:"archive_id"`
	ArchiveName string `json:"archive_name"`
	Message     string `json:"message"`
}

type ArchiveInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ListArchivesResponse struct {
	Archives []ArchiveInfo `json:"archives"`
}

// Results types

type NomineeCount struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type CategoryWinner struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CategoryResult struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Winner   *CategoryWinner `json:"winner,omitempty"`
	Nominees []NomineeCount  `json:"nominees"`
}

type VoteLine struct {
	Category string `json:"category"`
	Nominee  string `json:"nominee"`
}

type VoterLogEntry struct {
	Email       string     `json:"email"`
	Votes       []VoteLine `json:"votes"`
	LastCastAt  time.Time  `json:"last_cast_at"`
	LastCastAgo string     `json:"last_cast_ago"`
}

type ResultsResponse struct {
	Status     string           `json:"status"`
	Archive    *ArchiveInfo     `json:"archive,omitempty"`
	VoteCount  int              `json:"vote_count"`
	Categories []CategoryResult `json:"categories"`
	Voters     []VoterLogEntry  `json:"voters"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
