package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/handiism/playlist-formatter/internal/model"
	"github.com/handiism/playlist-formatter/internal/playlist"
)

// Styles for the pretty info block
var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// Render renders the playlist's track listing under the given style.
//
// The result is one entry per output line, in plain text with no ANSI
// escapes, so the same lines can be printed to a terminal or written to
// a file byte for byte. Rendering never modifies the playlist and is
// deterministic: the same playlist and style always produce identical
// lines.
//
//   - StyleBasic: one minimal line per track ("Artist - Title", or the
//     preserved raw text when the line never decomposed).
//   - StyleNumbered: the basic line prefixed with the 1-based position,
//     right-aligned to a common column width when the playlist has ten
//     or more tracks.
//   - StylePretty: the numbered listing framed with a column header and
//     separator rules. The info block is not part of Render; see
//     PrintInfo.
func Render(pl *playlist.Playlist, style model.FormattingStyle) []string {
	switch style {
	case model.StyleBasic:
		return renderBasic(pl)
	case model.StyleNumbered:
		return renderNumbered(pl)
	case model.StylePretty:
		return renderPretty(pl)
	default:
		return renderPretty(pl)
	}
}

// Text renders the playlist as a single string, one line per track row
// plus a trailing newline. This is the exact content the save path
// writes to disk.
func Text(pl *playlist.Playlist, style model.FormattingStyle) string {
	var sb strings.Builder
	for _, line := range Render(pl, style) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderBasic(pl *playlist.Playlist) []string {
	lines := make([]string, 0, len(pl.Tracks))
	for _, track := range pl.Tracks {
		lines = append(lines, track.Display())
	}
	return lines
}

func renderNumbered(pl *playlist.Playlist) []string {
	width := positionWidth(len(pl.Tracks))

	lines := make([]string, 0, len(pl.Tracks))
	for _, track := range pl.Tracks {
		lines = append(lines, fmt.Sprintf("%*d. %s", width, track.Number, track.Display()))
	}
	return lines
}

func renderPretty(pl *playlist.Playlist) []string {
	width := positionWidth(len(pl.Tracks))
	header := fmt.Sprintf("%*s  %s", width, "#", "Track")

	rows := renderNumbered(pl)

	ruleWidth := utf8.RuneCountInString(header)
	for _, row := range rows {
		if w := utf8.RuneCountInString(row); w > ruleWidth {
			ruleWidth = w
		}
	}
	rule := strings.Repeat("-", ruleWidth)

	lines := make([]string, 0, len(rows)+3)
	lines = append(lines, header, rule)
	lines = append(lines, rows...)
	lines = append(lines, rule)
	return lines
}

// positionWidth returns the column width for position numbers:
// track counts below ten keep a single-character column, larger
// playlists right-align to the widest position.
func positionWidth(count int) int {
	if count < 10 {
		return 1
	}
	return len(strconv.Itoa(count))
}

// PrintInfo writes the pretty style's info block to w: source file
// name, track count, and humanized size and modification time. The
// block is styled for terminal display and is never part of the
// rendered listing, so saved files do not contain it.
func PrintInfo(w io.Writer, pl *playlist.Playlist) {
	fmt.Fprintln(w, nameStyle.Render(pl.Info.Name))
	fmt.Fprintln(w, labelStyle.Render("tracks:")+" "+strconv.Itoa(pl.Len()))
	fmt.Fprintln(w, labelStyle.Render("size:")+" "+humanize.IBytes(uint64(pl.Info.Size)))
	fmt.Fprintln(w, labelStyle.Render("modified:")+" "+
		pl.Info.Modified.Format("2006-01-02 15:04:05")+
		" ("+humanize.Time(pl.Info.Modified)+")")
	fmt.Fprintln(w)
}
