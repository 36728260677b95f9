// Package match provides label normalization, Levenshtein similarity,
// label suggestions, and field-kind compatibility scoring.
//
// Key functions:
//   - NormalizeLabel: normalizes labels for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - ScoreKindCompatibility: scores whether a value saved under one kind
//     can be shown in a field of another kind
//   - SuggestLabels: ranks current labels similar to a removed one
package match
