package tags

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/playlist-formatter/internal/model"
)

// maxConcurrentReads bounds how many tag files are open at once.
const maxConcurrentReads = 8

// Enrich fills Artist and Title from ID3 tags for tracks whose raw
// line is a path to a local MP3 file, as found in M3U-style exports.
//
// Relative paths are resolved against baseDir (the directory of the
// playlist file). Files are read concurrently with a bounded worker
// count. Enrichment is best-effort: tracks whose file is missing, is
// not an MP3, or has no usable tag are left untouched, and Enrich
// never returns an error to the caller.
//
// Only the Artist/Title fields are updated; Raw keeps the original
// line so basic output still reproduces the source.
func Enrich(ctx context.Context, baseDir string, tracks []model.Track) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)

	for i := range tracks {
		i := i
		path, ok := candidatePath(baseDir, tracks[i])
		if !ok {
			continue
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			artist, title, err := readTag(path)
			if err != nil {
				return nil
			}
			if title != "" {
				tracks[i].Title = title
			}
			if artist != "" {
				tracks[i].Artist = artist
			}
			return nil
		})
	}

	// Workers only ever return nil; Wait is for completion.
	_ = g.Wait()
}

// candidatePath reports whether the track's raw line points at an
// existing local MP3 file, and returns the resolved path.
func candidatePath(baseDir string, track model.Track) (string, bool) {
	raw := track.Raw
	if raw == "" {
		return "", false
	}
	if !strings.EqualFold(filepath.Ext(raw), ".mp3") {
		return "", false
	}

	path := raw
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return "", false
	}

	return path, true
}

// readTag opens the MP3 file and extracts artist and title frames.
func readTag(path string) (artist, title string, err error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", "", err
	}
	defer tag.Close()

	return strings.TrimSpace(tag.Artist()), strings.TrimSpace(tag.Title()), nil
}
