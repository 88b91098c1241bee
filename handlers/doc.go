// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the SPART Awards API.

# Handler Types

Each handler is a struct with store and catalog dependencies:

  - VoteHandler: Ballot submission
  - AdminHandler: Voting lifecycle, results, archives
  - CatalogHandler: Public catalog listing

Handlers are created via constructor functions:

	voteHandler := handlers.NewVoteHandler(st, cat)

# Voting Flow

Voters read the catalog and submit one ballot body:

	GET  /api/categories → ListCategories
	POST /api/vote       → SubmitBallot

Submission is gated on voting status: closed voting returns 403. Selections
reference nominees by position; unresolvable selections are skipped so one
stale choice cannot discard a voter's remaining valid ones.

# Admin Flow

Admin endpoints require the shared secret (X-Admin-Secret header or ?auth=):

	GET  /api/admin/status   → GetStatus
	POST /api/admin/start    → StartVoting
	POST /api/admin/stop     → StopVoting
	POST /api/admin/reset    → ResetVoting (archive + clear + close)
	GET  /api/admin/results  → GetResults (live or ?archive=<id>)
	GET  /api/admin/archives → ListArchives

Results carry per-category counts with winners and a sortable voter log;
the tally itself lives in the tally package.
*/
package handlers
