// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and shared types for the API.

# Request Types

  - SubmitBallotRequest: email, selections (map[categoryID]nomineeIndex)

# Response Types

  - SubmitBallotResponse: recorded, message
  - StatusResponse / TransitionResponse: voting status
  - ResetResponse: archive_id, archive_name, message
  - ResultsResponse: status, vote_count, categories, voters
  - ListArchivesResponse: archives
  - ErrorResponse: error, message

# Constants

Voting status values:

	StatusOpen   = "open"
	StatusClosed = "closed"
*/
package models
