// Package tags provides best-effort ID3 enrichment for playlists whose
// lines are local audio file paths rather than "Artist - Title" text.
package tags
