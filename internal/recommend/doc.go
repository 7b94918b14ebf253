// Package recommend builds explainable wine and sake recommendations from a
// single user's own tasting history.
//
// # Pipeline
//
// Every call reads a full snapshot of wines and sakes from the record store and
// runs it through the same stages:
//
//   - BuildProfile accumulates attribute weights from high-rated records and
//     the per-category average rating
//   - WineSimilarity / SakeSimilarity compare two records of one category with
//     weighted partial-attribute matching, normalized to [0,1]
//   - ScoreWine / ScoreSake measure how well a record matches the profile
//   - Recommend selects similarity-based and preference-based candidates,
//     ranks them and attaches a reason
//
// Scoring is deterministic for a fixed input order. Candidate selection walks
// records in the order the store returns them.
//
// # Failure semantics
//
// Engine.Generate never returns an error: store failures and panics during
// scoring are logged and produce an empty list.
package recommend
