// Package format renders a parsed playlist under one of the three
// presentation styles. Rendering is pure: terminal output and saved
// files go through the same Render/Text functions and differ only in
// destination.
package format
