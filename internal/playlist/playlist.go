package playlist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/handiism/playlist-formatter/internal/model"
	"github.com/handiism/playlist-formatter/internal/tags"
)

// Info holds the source-file metadata captured at parse time. It is
// displayed by the pretty style's info block and never persisted.
type Info struct {
	// Path is the absolute path of the source file.
	Path string

	// Name is the base name of the source file.
	Name string

	// Size is the source file size in bytes.
	Size int64

	// Modified is the source file's last modification time.
	Modified time.Time
}

// Playlist is the parsed result for one input file: the ordered track
// sequence plus the source info block.
//
// The track order is the order lines appeared in the file and is never
// changed after parsing. A playlist with zero tracks is valid; it means
// the file contained no content lines, not that parsing failed.
type Playlist struct {
	Info   Info
	Tracks []model.Track
}

// Option configures parsing behavior.
type Option func(*options)

type options struct {
	readTags bool
}

// WithTagReading enables ID3 tag enrichment for tracks whose raw line
// is a path to a local MP3 file (M3U-style exports). Tag reading never
// fails the parse; unreadable files are simply left as they were.
func WithTagReading(enabled bool) Option {
	return func(o *options) {
		o.readTags = enabled
	}
}

// New reads and parses the playlist file at path.
//
// The file must exist and be a regular, readable, UTF-8 text file. Its
// contents are split into lines (both Unix and Windows line endings are
// accepted), each line is handed to model.ParseLine together with the
// next 1-based position, and the kept tracks are accumulated in file
// order. Source metadata for the info block is captured from the same
// stat call.
//
// Any failure returns an error naming the offending path; there is no
// partial playlist on failure.
func New(path string, opts ...Option) (*Playlist, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve playlist path %q: %w", path, err)
	}

	fi, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat playlist file %q: %w", abs, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %q", abs)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read playlist file %q: %w", abs, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("playlist file %q is not valid UTF-8 text", abs)
	}

	pl := &Playlist{
		Info: Info{
			Path:     abs,
			Name:     filepath.Base(abs),
			Size:     fi.Size(),
			Modified: fi.ModTime(),
		},
	}

	for _, line := range splitLines(string(data)) {
		track, ok := model.ParseLine(line, len(pl.Tracks)+1)
		if !ok {
			continue
		}
		pl.Tracks = append(pl.Tracks, track)
	}

	if o.readTags {
		tags.Enrich(context.Background(), filepath.Dir(abs), pl.Tracks)
	}

	return pl, nil
}

// Len returns the number of tracks in the playlist.
func (p *Playlist) Len() int {
	return len(p.Tracks)
}

// splitLines splits text on newlines, accepting \n, \r\n and bare \r.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
