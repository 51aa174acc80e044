package mapper

import (
	"encoding/json"

	"course-support-agent/internal/entity"
	"course-support-agent/internal/model"

	"github.com/pgvector/pgvector-go"
)

type CatalogUnitMapper struct{}

func NewCatalogUnitMapper() *CatalogUnitMapper {
	return &CatalogUnitMapper{}
}

func (m *CatalogUnitMapper) ToUnit(c *model.CatalogUnit) entity.RetrievableUnit {
	var languages []string
	if len(c.Languages) > 0 {
		// Malformed JSON leaves the slice empty rather than failing retrieval.
		_ = json.Unmarshal(c.Languages, &languages)
	}

	return entity.RetrievableUnit{
		Text: c.Document,
		Metadata: entity.UnitMetadata{
			CourseNo:      c.CourseNo,
			Title:         c.Title,
			Languages:     languages,
			LanguageCodes: c.LanguageCodes,
		},
	}
}

func (m *CatalogUnitMapper) ToModel(unit entity.RetrievableUnit, position int, embedding []float32) (*model.CatalogUnit, error) {
	languages, err := json.Marshal(unit.Metadata.Languages)
	if err != nil {
		return nil, err
	}

	return &model.CatalogUnit{
		Position:      position,
		CourseNo:      unit.Metadata.CourseNo,
		Title:         unit.Metadata.Title,
		Document:      unit.Text,
		Languages:     languages,
		LanguageCodes: unit.Metadata.LanguageCodes,
		Embedding:     pgvector.NewVector(embedding),
	}, nil
}

func (m *CatalogUnitMapper) ToUnits(models []*model.CatalogUnit) []entity.RetrievableUnit {
	units := make([]entity.RetrievableUnit, len(models))
	for i, c := range models {
		units[i] = m.ToUnit(c)
	}
	return units
}
