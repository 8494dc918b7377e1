package footage

import (
	"testing"
)

func TestClassifyDecisionTable(t *testing.T) {
	tests := []struct {
		name string
		want VideoType
	}{
		{"GH010001", Chaptered},
		{"GX021234", Chaptered},
		{"GHAA0001", Looped},
		{"GXzb0042", Looped},
		{"GHAB12CD", Looped},
		{"GH01ABCD", Chaptered},
		{"GH1A0001", Unknown},
		{"GH01001", Unknown},
		{"GH0100011", Unknown},
		{"GH01", Unknown},
		{"GH", Unknown},
		{"", Unknown},
		{"GP010001", Unknown},
		{"gh010001", Unknown},
		{"DJI_0001", Unknown},
		{"IMG_1234", Unknown},
		{"GHÄÖ0001", Looped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name); got != tt.want {
				t.Fatalf("Classify(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseFilenameSegments(t *testing.T) {
	parts, ok := ParseFilename("GX020007")
	if !ok {
		t.Fatal("expected camera filename to parse")
	}
	if parts.Prefix != "GX" || parts.Middle != "02" || parts.FileNumber != "0007" || parts.Type != Chaptered {
		t.Fatalf("unexpected parts: %+v", parts)
	}

	parts, ok = ParseFilename("GHAB0007")
	if !ok || parts.Middle != "AB" || parts.Type != Looped {
		t.Fatalf("unexpected looped parts: %+v ok=%v", parts, ok)
	}

	if _, ok := ParseFilename("VID_0001"); ok {
		t.Fatal("expected non-camera name to be rejected")
	}
}

func TestClassifyFileStripsExtension(t *testing.T) {
	if got := ClassifyFile("/media/card/GH010001.MP4"); got != Chaptered {
		t.Fatalf("expected Chaptered, got %s", got)
	}
	if got := ClassifyFile("GHAA0001.mov"); got != Looped {
		t.Fatalf("expected Looped, got %s", got)
	}
}

func TestFileNumber(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/in/GH010001.MP4", "0001"},
		{"/in/GH020001.MP4", "0001"},
		{"GH010002.mp4", "0002"},
		{"GHAA12345.mp4", "12345"},
		{"GH01.mp4", ""},
		{"AB.mp4", ""},
	}
	for _, tt := range tests {
		if got := FileNumber(tt.path); got != tt.want {
			t.Fatalf("FileNumber(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestStripExt(t *testing.T) {
	tests := map[string]string{
		"GH010001.MP4":     "GH010001",
		"archive.tar.gz":   "archive.tar",
		".hidden":          ".hidden",
		"noext":            "noext",
		"..GH010001.MP4":   "..GH010001",
		"GH010001.MP4.mov": "GH010001.MP4",
	}
	for in, want := range tests {
		if got := StripExt(in); got != want {
			t.Fatalf("StripExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestVideoTypeStringDefaultsToUnknown(t *testing.T) {
	var zero VideoType
	if zero.String() != "Unknown" {
		t.Fatalf("expected Unknown, got %q", zero.String())
	}
}
