package footage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogPreservesInsertionOrder(t *testing.T) {
	c := NewCatalog()
	c.Add(BucketKey{Serial: "S2", Type: Looped}, Entry{Path: "/in/GHAA0001.MP4"})
	c.Add(BucketKey{Serial: "S1", Type: Chaptered}, Entry{Path: "/in/GH010001.MP4"})
	c.Add(BucketKey{Serial: "S2", Type: Chaptered}, Entry{Path: "/in/GH010005.MP4"})
	c.Add(BucketKey{Serial: "S2", Type: Looped}, Entry{Path: "/in/GHAB0001.MP4"})

	if diff := cmp.Diff([]string{"S2", "S1"}, c.Serials()); diff != "" {
		t.Fatalf("serial order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]VideoType{Looped, Chaptered}, c.Types("S2")); diff != "" {
		t.Fatalf("type order mismatch (-want +got):\n%s", diff)
	}

	entries, ok := c.Entries(BucketKey{Serial: "S2", Type: Looped})
	if !ok {
		t.Fatal("expected looped bucket for S2")
	}
	gotPaths := []string{entries[0].Path, entries[1].Path}
	if diff := cmp.Diff([]string{"/in/GHAA0001.MP4", "/in/GHAB0001.MP4"}, gotPaths); diff != "" {
		t.Fatalf("entry order mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", c.Len())
	}
}

func TestCatalogDistinguishesMissingBucket(t *testing.T) {
	c := NewCatalog()
	if _, ok := c.Entries(BucketKey{Serial: "S1", Type: Unknown}); ok {
		t.Fatal("expected missing bucket")
	}
	if types := c.Types("S1"); len(types) != 0 {
		t.Fatalf("expected no types, got %v", types)
	}
}

func TestGroupSessionsByFileNumber(t *testing.T) {
	entries := []Entry{
		{Path: "/in/GH010001.MP4", CreateDate: Some("2023:06:01 10:00:00")},
		{Path: "/in/GH010002.MP4", CreateDate: Some("2023:06:02 08:00:00")},
		{Path: "/in/GH020001.MP4", CreateDate: Some("2023:06:01 10:05:00")},
	}
	sessions := GroupSessions(entries)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].FileNumber != "0001" || len(sessions[0].Entries) != 2 {
		t.Fatalf("unexpected first session: %+v", sessions[0])
	}
	if sessions[1].FileNumber != "0002" || len(sessions[1].Entries) != 1 {
		t.Fatalf("unexpected second session: %+v", sessions[1])
	}
	if got := sessions[0].Label(); got != "20230601_100000" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := sessions[1].Label(); got != "20230602_080000" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestSessionLabelUsesFirstListedNotEarliest(t *testing.T) {
	entries := []Entry{
		{Path: "/in/GH020001.MP4", CreateDate: Some("2023:06:01 10:05:00")},
		{Path: "/in/GH010001.MP4", CreateDate: Some("2023:06:01 10:00:00")},
	}
	if got := SessionLabel(entries); got != "20230601_100500" {
		t.Fatalf("expected label from first listed entry, got %q", got)
	}
}

func TestSessionLabelUnknownTimestamp(t *testing.T) {
	tests := map[string][]Entry{
		"empty":       nil,
		"absent":      {{Path: "/in/GH010001.MP4"}, {Path: "/in/GH020001.MP4", CreateDate: Some("2023:06:01 10:05:00")}},
		"unparseable": {{Path: "/in/GH010001.MP4", CreateDate: Some("not a date")}},
	}
	for name, entries := range tests {
		t.Run(name, func(t *testing.T) {
			if got := SessionLabel(entries); got != UnknownTimestamp {
				t.Fatalf("expected %s, got %q", UnknownTimestamp, got)
			}
		})
	}
}
