package model

import (
	"regexp"
	"strings"
)

// Track represents a single entry in a parsed playlist.
//
// Track contains everything the formatter needs to render one line:
//   - Number is the 1-indexed position assigned by parse order
//   - Title and Artist are the decomposed fields, when the raw line
//     followed the "Artist - Title" convention
//   - Raw preserves the trimmed original line when it could not be
//     decomposed, so basic output never loses input text
//
// Tracks are created once by ParseLine and never modified afterwards.
// Any track number embedded in the raw line (e.g. "03. ...") is display
// noise from the exporting software and is stripped: the position in
// the file is authoritative.
//
// Example:
//
//	track, ok := ParseLine("2. Daft Punk - Around the World", 2)
//	// track.Number = 2, track.Artist = "Daft Punk", track.Title = "Around the World"
type Track struct {
	// Number is the track position (1-indexed, assigned by parse order).
	Number int

	// Title is the track title. Never empty for a parsed track.
	Title string

	// Artist is the artist name. Empty when the raw line had no
	// recognizable artist field.
	Artist string

	// Raw is the trimmed original line, kept only when the line could
	// not be split into artist and title. Empty otherwise.
	Raw string
}

var (
	// Leading index prefix written by DJ software: "12.", "12)", "12 -".
	indexPrefix = regexp.MustCompile(`^\d+\s*[.)-]\s+`)

	// Separator/header lines: runs of dashes, equals, stars or underscores.
	separatorLine = regexp.MustCompile(`^[-=*_]{2,}$`)
)

// ParseLine converts one raw playlist line into a Track.
//
// The line is trimmed first. The boolean result is false and the line
// is skipped entirely when the trimmed text is:
//   - empty or whitespace only
//   - a comment or header line starting with '#' (M3U convention)
//   - a visual separator such as "----" or "===="
//
// Otherwise a leading index prefix ("12.", "12)", "12 -") is stripped
// and the remainder is split on the first " - " into artist and title.
// A non-empty line that does not follow that convention still yields a
// Track: the artist is left empty and the trimmed original is kept in
// Raw, so no content line is ever silently dropped.
//
// ParseLine is a pure function of its inputs and performs no I/O.
func ParseLine(raw string, position int) (Track, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Track{}, false
	}
	if strings.HasPrefix(line, "#") || separatorLine.MatchString(line) {
		return Track{}, false
	}

	body := indexPrefix.ReplaceAllString(line, "")
	body = strings.TrimSpace(body)
	if body == "" {
		// The line was only an index prefix, e.g. "7.".
		return Track{}, false
	}

	track := Track{Number: position}
	if artist, title, ok := splitArtistTitle(body); ok {
		track.Artist = artist
		track.Title = title
	} else {
		track.Title = body
		track.Raw = line
	}

	return track, true
}

// Display returns the minimal one-line representation of the track:
// "Artist - Title" when both fields are known, the preserved raw text
// when the line never decomposed, and the bare title otherwise.
func (t Track) Display() string {
	if t.Artist != "" {
		return t.Artist + " - " + t.Title
	}
	if t.Raw != "" {
		return t.Raw
	}
	return t.Title
}

// splitArtistTitle splits "Artist - Title" on the first " - " separator.
// Both sides must be non-empty after trimming for the split to count.
func splitArtistTitle(s string) (artist, title string, ok bool) {
	before, after, found := strings.Cut(s, " - ")
	if !found {
		return "", "", false
	}

	artist = strings.TrimSpace(before)
	title = strings.TrimSpace(after)
	if artist == "" || title == "" {
		return "", "", false
	}

	return artist, title, true
}
