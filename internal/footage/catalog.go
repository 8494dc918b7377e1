package footage

// Entry is one file placed in a bucket: its source path and the raw
// TrackCreateDate it was resolved with.
type Entry struct {
	Path       string
	CreateDate Optional
}

// BucketKey identifies the bucket for one camera and recording mode.
type BucketKey struct {
	Serial string
	Type   VideoType
}

// Catalog buckets entries by camera serial number and VideoType. Serials and
// types are returned in first-insertion order and entries keep the order in
// which they were added.
type Catalog struct {
	serials []string
	types   map[string][]VideoType
	buckets map[BucketKey][]Entry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		types:   make(map[string][]VideoType),
		buckets: make(map[BucketKey][]Entry),
	}
}

// Add appends entry to the bucket for key, creating the bucket if needed.
func (c *Catalog) Add(key BucketKey, entry Entry) {
	if _, ok := c.types[key.Serial]; !ok {
		c.serials = append(c.serials, key.Serial)
	}
	if _, ok := c.buckets[key]; !ok {
		c.types[key.Serial] = append(c.types[key.Serial], key.Type)
	}
	c.buckets[key] = append(c.buckets[key], entry)
}

// Serials lists the serial numbers with at least one entry.
func (c *Catalog) Serials() []string {
	return append([]string(nil), c.serials...)
}

// Types lists the video types bucketed under serial.
func (c *Catalog) Types(serial string) []VideoType {
	return append([]VideoType(nil), c.types[serial]...)
}

// Entries returns the entries for key. The boolean is false when no bucket
// exists for key.
func (c *Catalog) Entries(key BucketKey) ([]Entry, bool) {
	entries, ok := c.buckets[key]
	if !ok {
		return nil, false
	}
	return append([]Entry(nil), entries...), true
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	total := 0
	for _, entries := range c.buckets {
		total += len(entries)
	}
	return total
}

// Session holds the chapters of one Chaptered recording.
type Session struct {
	FileNumber string
	Entries    []Entry
}

// Label names the session folder after its first chapter's timestamp.
func (s Session) Label() string {
	return SessionLabel(s.Entries)
}

// GroupSessions splits Chaptered entries into sessions keyed by file number.
// Sessions appear in the order their first chapter was seen.
func GroupSessions(entries []Entry) []Session {
	index := make(map[string]int, len(entries))
	sessions := make([]Session, 0, len(entries))
	for _, entry := range entries {
		number := FileNumber(entry.Path)
		if idx, ok := index[number]; ok {
			sessions[idx].Entries = append(sessions[idx].Entries, entry)
			continue
		}
		index[number] = len(sessions)
		sessions = append(sessions, Session{
			FileNumber: number,
			Entries:    []Entry{entry},
		})
	}
	return sessions
}

// SessionLabel formats the first entry's timestamp as YYYYMMDD_HHMMSS. The
// first entry is the earliest listed, not the earliest recorded. Without a
// usable timestamp the label is UnknownTimestamp.
func SessionLabel(entries []Entry) string {
	if len(entries) == 0 || !entries[0].CreateDate.Present() {
		return UnknownTimestamp
	}
	ts, err := ParseCreateDate(entries[0].CreateDate.Value())
	if err != nil {
		return UnknownTimestamp
	}
	return ts.Format(SessionLabelLayout)
}
