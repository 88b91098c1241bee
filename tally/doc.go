// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally computes voting results from ledger records.

The tally is a pure projection: Compute takes the catalog and a slice of
vote records and returns per-category nominee counts plus per-voter
histories, without caching or incremental state. Every catalog
(category, nominee) pair appears in the counts, zero or not.

WinnerOf resolves a category's winner with a deterministic tie-break:
strictly highest count, ties going to the nominee listed first in the
catalog. SortVoters reorders the voter log by last-cast time or email.
*/
package tally
