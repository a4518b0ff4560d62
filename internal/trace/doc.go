// Package trace records what a run of tick operations did.
//
// A Snapshot is the ordered list of Events a run produced, labelled with the
// scenario name and a run token. Snapshots serialize to canonical JSON
// (MarshalCanonical) so that identical runs produce identical bytes, which
// makes them usable as golden files and as input to a content digest.
//
// CANONICAL JSON:
//   - Object keys sorted by UTF-16 code units
//   - No insignificant whitespace, no HTML escaping
//   - Strings NFC normalized
//   - No floats, no null
package trace
