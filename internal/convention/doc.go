// Package convention implements the field-resolution engine behind a
// naming convention: typed token rules (Field) composed in declaration
// order by a Profile, which turns candidate input values into a canonical
// name (solve/compose) and decodes an existing name back into per-field
// semantic values (unsolve).
//
// Fields come in three kinds:
//
//   - Text: free-form string segment.
//   - Lookup: ordered key -> token table; candidates are looked up by key
//     and contribute the mapped token.
//   - Integer: zero-padded numeric segment with a configurable width.
//
// A field that matches nothing falls back to its configured default, if
// any. Candidate values of a type the field cannot classify are reported
// as structured mismatches on the solve result rather than aborting the
// pass; callers decide whether to treat them as fatal.
package convention
