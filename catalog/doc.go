// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog defines the award catalog: the categories voters vote on and
each category's ordered nominee list.

The catalog is loaded once at startup - from a YAML file or the embedded
SPART default - validated, and then immutable. Components receive it by
injection; there is no package-level lookup table.

Nominees have no stable ids. A ballot references a nominee by its position
in the category's list, and stored vote records carry the resolved
(category title, nominee name) pair; Resolve and IDByTitle reconcile the two
representations. Category titles must therefore be unique, which New
enforces at load time.
*/
package catalog
