package format

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/handiism/playlist-formatter/internal/model"
	"github.com/handiism/playlist-formatter/internal/playlist"
)

func testPlaylist(tracks ...model.Track) *playlist.Playlist {
	return &playlist.Playlist{
		Info: playlist.Info{
			Path:     "/exports/set.txt",
			Name:     "set.txt",
			Size:     64,
			Modified: time.Date(2024, 6, 1, 22, 15, 0, 0, time.UTC),
		},
		Tracks: tracks,
	}
}

func tracksN(n int) []model.Track {
	tracks := make([]model.Track, 0, n)
	for i := 1; i <= n; i++ {
		tracks = append(tracks, model.Track{
			Number: i,
			Artist: fmt.Sprintf("Artist %d", i),
			Title:  fmt.Sprintf("Title %d", i),
		})
	}
	return tracks
}

func TestRender_Basic(t *testing.T) {
	pl := testPlaylist(
		model.Track{Number: 1, Artist: "Moderat", Title: "A New Error"},
		model.Track{Number: 2, Title: "untagged bootleg", Raw: "untagged bootleg"},
	)

	got := Render(pl, model.StyleBasic)
	want := []string{
		"Moderat - A New Error",
		"untagged bootleg",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render(Basic) = %q, want %q", got, want)
	}
}

func TestRender_Numbered(t *testing.T) {
	pl := testPlaylist(
		model.Track{Number: 1, Artist: "A", Title: "B"},
		model.Track{Number: 2, Artist: "C", Title: "D"},
	)

	got := Render(pl, model.StyleNumbered)
	want := []string{
		"1. A - B",
		"2. C - D",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render(Numbered) = %q, want %q", got, want)
	}
}

func TestRender_NumberedAlignment(t *testing.T) {
	pl := testPlaylist(tracksN(12)...)

	got := Render(pl, model.StyleNumbered)
	if len(got) != 12 {
		t.Fatalf("got %d lines, want 12", len(got))
	}

	// With 10+ tracks positions are right-aligned to a common width.
	if !strings.HasPrefix(got[0], " 1. ") {
		t.Errorf("line 1 = %q, want leading padded position", got[0])
	}
	if !strings.HasPrefix(got[11], "12. ") {
		t.Errorf("line 12 = %q, want unpadded two-digit position", got[11])
	}

	// Every prefix up to the dot must have the same width.
	dot := strings.Index(got[0], ".")
	for i, line := range got {
		if strings.Index(line, ".") != dot {
			t.Errorf("line %d = %q: inconsistent position column", i+1, line)
		}
	}
}

func TestRender_NumberedSmallPlaylistUnpadded(t *testing.T) {
	pl := testPlaylist(tracksN(9)...)

	got := Render(pl, model.StyleNumbered)
	if !strings.HasPrefix(got[0], "1. ") {
		t.Errorf("line 1 = %q, want unpadded position for short playlist", got[0])
	}
}

func TestRender_Pretty(t *testing.T) {
	pl := testPlaylist(
		model.Track{Number: 1, Artist: "Moderat", Title: "A New Error"},
	)

	got := Render(pl, model.StylePretty)

	// header + rule + 1 track + rule
	if len(got) != 4 {
		t.Fatalf("Render(Pretty) = %q, want 4 lines", got)
	}
	if !strings.Contains(got[0], "Track") {
		t.Errorf("header = %q, want column header", got[0])
	}
	if !strings.HasPrefix(got[1], "--") || got[1] != got[3] {
		t.Errorf("rules = %q / %q, want matching separator rules", got[1], got[3])
	}
	if got[2] != "1. Moderat - A New Error" {
		t.Errorf("row = %q", got[2])
	}
}

func TestRender_Deterministic(t *testing.T) {
	pl := testPlaylist(tracksN(11)...)

	for _, style := range []model.FormattingStyle{model.StyleBasic, model.StyleNumbered, model.StylePretty} {
		first := Render(pl, style)
		second := Render(pl, style)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("style %v: repeated render differs", style)
		}
	}
}

func TestText(t *testing.T) {
	pl := testPlaylist(
		model.Track{Number: 1, Artist: "A", Title: "B"},
		model.Track{Number: 2, Artist: "C", Title: "D"},
	)

	got := Text(pl, model.StyleBasic)
	want := "A - B\nC - D\n"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestText_EmptyPlaylist(t *testing.T) {
	pl := testPlaylist()
	if got := Text(pl, model.StyleBasic); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestPrintInfo(t *testing.T) {
	pl := testPlaylist(tracksN(3)...)

	var buf bytes.Buffer
	PrintInfo(&buf, pl)

	out := buf.String()
	for _, want := range []string{"set.txt", "3", "64 B", "2024-06-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("info block missing %q:\n%s", want, out)
		}
	}
}
