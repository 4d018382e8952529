package tags

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/playlist-formatter/internal/model"
)

func TestCandidatePath(t *testing.T) {
	tmpDir := t.TempDir()
	mp3 := filepath.Join(tmpDir, "track.mp3")
	if err := os.WriteFile(mp3, []byte("not really audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		track model.Track
		want  string
		ok    bool
	}{
		{
			name:  "absolute mp3 path",
			track: model.Track{Raw: mp3},
			want:  mp3,
			ok:    true,
		},
		{
			name:  "relative mp3 path",
			track: model.Track{Raw: "track.mp3"},
			want:  mp3,
			ok:    true,
		},
		{
			name:  "decomposed track has no raw",
			track: model.Track{Artist: "A", Title: "B"},
			ok:    false,
		},
		{
			name:  "not an mp3",
			track: model.Track{Raw: "notes.txt"},
			ok:    false,
		},
		{
			name:  "missing file",
			track: model.Track{Raw: "gone.mp3"},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := candidatePath(tmpDir, tt.track)
			if ok != tt.ok {
				t.Fatalf("candidatePath() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("candidatePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnrich_LeavesUnreadableTracksAlone(t *testing.T) {
	tmpDir := t.TempDir()

	// A file with an .mp3 name but no ID3 tag: enrichment must skip it
	// without touching the track or reporting failure.
	bogus := filepath.Join(tmpDir, "bogus.mp3")
	if err := os.WriteFile(bogus, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	tracks := []model.Track{
		{Number: 1, Title: bogus, Raw: bogus},
		{Number: 2, Artist: "A", Title: "B"},
	}

	Enrich(context.Background(), tmpDir, tracks)

	if tracks[0].Raw != bogus || tracks[0].Title != bogus {
		t.Errorf("unreadable track was modified: %+v", tracks[0])
	}
	if tracks[1].Artist != "A" || tracks[1].Title != "B" {
		t.Errorf("decomposed track was modified: %+v", tracks[1])
	}
}
