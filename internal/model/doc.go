// Package model defines the core data structures of the playlist
// formatter.
//
// # Track
//
// Track represents one playlist entry. Tracks are built from raw lines
// by ParseLine and are immutable afterwards:
//
//	track, ok := model.ParseLine("Daft Punk - One More Time", 1)
//	if ok {
//	    fmt.Println(track.Display()) // "Daft Punk - One More Time"
//	}
//
// # FormattingStyle
//
// FormattingStyle is the closed set of presentation styles:
//
//	model.StyleBasic    // minimal, one line per track
//	model.StyleNumbered // position-prefixed
//	model.StylePretty   // info block + framed listing (default)
package model
