package catalog

import (
	"fmt"
	"strings"

	"course-support-agent/internal/entity"
)

// BuildUnit denormalizes a catalog record into the text blob the index
// embeds and retrieves. The field order matters for retrieval quality and
// stays fixed.
func BuildUnit(record *entity.CatalogRecord) entity.RetrievableUnit {
	languages := strings.Join(record.Languages, ", ")
	if languages == "" {
		languages = "Not specified"
	}

	text := fmt.Sprintf(
		"Course Title: %s\nCourse Description: %s\nAvailable Languages: %s\nTarget Audience: %s\nCourse Number: %d",
		record.Title,
		record.Description,
		languages,
		record.Audience,
		record.CourseNo,
	)

	return entity.RetrievableUnit{
		Text: text,
		Metadata: entity.UnitMetadata{
			CourseNo:      record.CourseNo,
			Title:         record.Title,
			Languages:     record.Languages,
			LanguageCodes: record.LanguageCodes,
		},
	}
}

// BuildUnits converts every record, preserving catalog order. The position
// of a unit in the returned slice is its insertion order in the index.
func BuildUnits(records []*entity.CatalogRecord) []entity.RetrievableUnit {
	units := make([]entity.RetrievableUnit, len(records))
	for i, record := range records {
		units[i] = BuildUnit(record)
	}
	return units
}
