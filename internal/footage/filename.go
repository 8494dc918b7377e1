package footage

import (
	"path/filepath"
	"regexp"
	"strings"
)

// VideoType is the recording mode derived from a camera filename.
type VideoType string

const (
	Chaptered VideoType = "Chaptered"
	Looped    VideoType = "Looped"
	Unknown   VideoType = "Unknown"
)

// String returns the display label for the type.
func (t VideoType) String() string {
	if t == "" {
		return string(Unknown)
	}
	return string(t)
}

// cameraNameRE matches the fixed-width naming convention: a two-character
// prefix (GH or GX), a two-character middle segment that is either all digits
// (chapter index) or all letters (loop index), and a four-character file
// number. Lengths are counted in characters, not bytes.
var cameraNameRE = regexp.MustCompile(`(?s)^(?P<prefix>G[HX])(?:(?P<chapter>\p{Nd}{2})|(?P<loop>\p{L}{2}))(?P<number>.{4})$`)

var (
	prefixIdx  = cameraNameRE.SubexpIndex("prefix")
	chapterIdx = cameraNameRE.SubexpIndex("chapter")
	loopIdx    = cameraNameRE.SubexpIndex("loop")
	numberIdx  = cameraNameRE.SubexpIndex("number")
)

// FilenameParts holds the segments of a recognized camera filename.
type FilenameParts struct {
	Prefix     string
	Middle     string
	FileNumber string
	Type       VideoType
}

// ParseFilename splits an extension-less base name into its segments. The
// boolean is false when the name does not follow the camera convention, in
// which case the returned parts are empty.
func ParseFilename(baseName string) (FilenameParts, bool) {
	match := cameraNameRE.FindStringSubmatch(baseName)
	if match == nil {
		return FilenameParts{}, false
	}
	parts := FilenameParts{
		Prefix:     match[prefixIdx],
		FileNumber: match[numberIdx],
	}
	switch {
	case match[chapterIdx] != "":
		parts.Middle = match[chapterIdx]
		parts.Type = Chaptered
	case match[loopIdx] != "":
		parts.Middle = match[loopIdx]
		parts.Type = Looped
	}
	return parts, true
}

// Classify applies the filename decision table to an extension-less base
// name. Anything that is not GH/GX followed by two digits or two letters and
// a four-character file number is Unknown.
func Classify(baseName string) VideoType {
	parts, ok := ParseFilename(baseName)
	if !ok {
		return Unknown
	}
	return parts.Type
}

// ClassifyFile classifies a file name or path after stripping its extension.
func ClassifyFile(name string) VideoType {
	return Classify(StripExt(filepath.Base(name)))
}

// FileNumber returns the characters after the first four of the path's
// extension-less base name. Chapters of one recording share this value.
func FileNumber(path string) string {
	runes := []rune(StripExt(filepath.Base(path)))
	if len(runes) <= 4 {
		return ""
	}
	return string(runes[4:])
}

// StripExt removes the final extension from name. Leading dots do not start
// an extension, so ".hidden" is returned unchanged.
func StripExt(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	ext := filepath.Ext(trimmed)
	if ext == "" {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
