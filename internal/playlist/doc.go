// Package playlist turns a raw playlist file into an ordered sequence
// of tracks plus the source-file info block.
//
//	pl, err := playlist.New("/exports/set-2024-06-01.txt")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %d tracks\n", pl.Info.Name, pl.Len())
//
// Parsing preserves input line order exactly: tracks are never
// reordered, deduplicated or filtered by content.
package playlist
