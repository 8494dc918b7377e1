package footage

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestOptionalJSONRoundTrip(t *testing.T) {
	var payload struct {
		Serial Optional `json:"serial"`
		Number Optional `json:"number"`
		Null   Optional `json:"null"`
		Absent Optional `json:"absent"`
	}
	if err := json.Unmarshal([]byte(`{"serial":"C3441324","number":123456,"null":null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !payload.Serial.Present() || payload.Serial.Value() != "C3441324" {
		t.Fatalf("unexpected serial: %v", payload.Serial)
	}
	if !payload.Number.Present() || payload.Number.Value() != "123456" {
		t.Fatalf("unexpected numeric value: %v", payload.Number)
	}
	if payload.Null.Present() {
		t.Fatal("expected null to be absent")
	}
	if payload.Absent.Present() {
		t.Fatal("expected missing key to be absent")
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"serial":"C3441324","number":"123456","null":null,"absent":null}`
	if string(encoded) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", encoded, want)
	}
}

func TestOptionalRejectsObjects(t *testing.T) {
	var o Optional
	if err := json.Unmarshal([]byte(`{"a":1}`), &o); err == nil {
		t.Fatal("expected error for object value")
	}
}

func TestSerialDefaultsToUnknownSerial(t *testing.T) {
	meta := VideoMetadata{}
	if meta.Serial() != UnknownSerial {
		t.Fatalf("expected %s, got %s", UnknownSerial, meta.Serial())
	}
	meta.CameraSerialNumber = Some("S1")
	if meta.Serial() != "S1" {
		t.Fatalf("expected S1, got %s", meta.Serial())
	}
}

func TestCreateTime(t *testing.T) {
	meta := VideoMetadata{TrackCreateDate: Some("2023:06:01 10:00:00")}
	ts, err := meta.CreateTime()
	if err != nil {
		t.Fatalf("CreateTime: %v", err)
	}
	want := time.Date(2023, 6, 1, 10, 0, 0, 0, time.Local)
	if !ts.Equal(want) {
		t.Fatalf("got %v, want %v", ts, want)
	}

	if _, err := (VideoMetadata{}).CreateTime(); !errors.Is(err, ErrNoCreateDate) {
		t.Fatalf("expected ErrNoCreateDate, got %v", err)
	}

	for _, raw := range []string{"0000:00:00 00:00:00", "2023-06-01 10:00:00", "garbage", ""} {
		meta := VideoMetadata{TrackCreateDate: Some(raw)}
		if _, err := meta.CreateTime(); err == nil {
			t.Fatalf("expected parse error for %q", raw)
		}
	}
}

func TestInWindowIsHalfOpen(t *testing.T) {
	minTime := time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local)
	maxTime := time.Date(2023, 12, 31, 0, 0, 0, 0, time.Local)

	if !InWindow(minTime, minTime, maxTime) {
		t.Fatal("expected lower bound to be inclusive")
	}
	if InWindow(maxTime, minTime, maxTime) {
		t.Fatal("expected upper bound to be exclusive")
	}
	if InWindow(minTime.Add(-time.Second), minTime, maxTime) {
		t.Fatal("expected time before window to be excluded")
	}
	if !InWindow(maxTime.Add(-time.Second), minTime, maxTime) {
		t.Fatal("expected time just before upper bound to be included")
	}
}
