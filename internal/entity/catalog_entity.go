package entity

// CatalogRecord is one course from the catalog source. Records are immutable
// after load; the whole catalog is rebuilt on every process start.
type CatalogRecord struct {
	CourseNo      int
	Title         string
	Description   string
	Audience      string
	LanguageCodes string   // raw comma-separated numeric codes, e.g. "6,20,24"
	Languages     []string // mapped names; unmapped codes pass through verbatim
}

// UnitMetadata carries the source record's identity alongside a retrievable unit.
type UnitMetadata struct {
	CourseNo      int
	Title         string
	Languages     []string
	LanguageCodes string
}

// RetrievableUnit is the denormalized text blob the index stores and returns.
// One unit per catalog record, never mutated after creation.
type RetrievableUnit struct {
	Text     string
	Metadata UnitMetadata
}
