// Package save implements the persistence policy: resolving where a
// rendered playlist is written and under what overwrite rule, and
// performing the write atomically.
package save
