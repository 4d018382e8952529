package save

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Request carries the already-validated save-related CLI inputs.
//
// Mutual exclusivity between ExplicitPath and Save is enforced at the
// argument layer; Resolve assumes at most one of them is in effect.
type Request struct {
	// ExplicitPath is the positional output argument, if given.
	ExplicitPath string

	// Save is true when a save was requested via the save flag.
	Save bool

	// SavePath is the optional path carried by the save flag.
	SavePath string

	// UseDefaultDir places generated file names in the default output
	// directory instead of next to the source file.
	UseDefaultDir bool

	// Force allows overwriting an existing output file.
	Force bool
}

// ExistsError is returned when the resolved target already exists and
// overwriting was not allowed. It names the conflicting path.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("output file already exists: %q (pass force to overwrite)", e.Path)
}

// Resolve decides where the rendered playlist should be written.
//
// The resolution order is:
//
//	explicit output given            -> the explicit path, as given
//	save flag with a path           -> that path
//	save flag, no path, default dir -> generated name in defaultDir
//	save flag, no path              -> generated name next to the source
//	neither                          -> no save (ok is false)
//
// The generated name is the source file's stem plus suffix, with a
// ".txt" extension, so deriving a name can never resolve back to the
// source file itself.
func Resolve(req Request, sourcePath, defaultDir, suffix string) (target string, ok bool) {
	switch {
	case req.ExplicitPath != "":
		return req.ExplicitPath, true
	case req.Save && req.SavePath != "":
		return req.SavePath, true
	case req.Save && req.UseDefaultDir:
		return filepath.Join(defaultDir, derivedName(sourcePath, suffix)), true
	case req.Save:
		return filepath.Join(filepath.Dir(sourcePath), derivedName(sourcePath, suffix)), true
	default:
		return "", false
	}
}

// derivedName builds the generated output file name from the source
// file name: "my set.txt" with suffix ".formatted" becomes
// "my set.formatted.txt".
func derivedName(sourcePath, suffix string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return sanitizeFileName(stem+suffix) + ".txt"
}

// Write writes content to target under the overwrite rule.
//
// If target exists and force is false, Write fails with *ExistsError
// and the existing file is left byte-for-byte untouched. The target's
// parent directory is created if missing. The content is first written
// to a temporary file in the target directory and then renamed into
// place, so the target never holds a partial write.
func Write(target, content string, force bool) error {
	if fi, err := os.Stat(target); err == nil {
		if fi.IsDir() {
			return fmt.Errorf("output path is a directory: %q", target)
		}
		if !force {
			return &ExistsError{Path: target}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat output path %q: %w", target, err)
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".playlist-*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary file in %q: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write output file %q: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write output file %q: %w", target, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write output file %q: %w", target, err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write output file %q: %w", target, err)
	}

	return nil
}

// sanitizeFileName removes or replaces characters that are invalid in
// file names, so generated names stay valid across operating systems.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
