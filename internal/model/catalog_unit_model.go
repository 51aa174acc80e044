package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type CatalogUnit struct {
	Id            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Position      int             `gorm:"not null;index"` // insertion order, tie-break key for search
	CourseNo      int             `gorm:"not null;index"`
	Title         string          `gorm:"type:text"`
	Document      string          `gorm:"type:text"`
	Languages     datatypes.JSON  `gorm:"type:jsonb;default:'[]'"`
	LanguageCodes string          `gorm:"type:text"`
	Embedding     pgvector.Vector `gorm:"type:vector(768)"` // Gemini text-embedding-004 uses 768 dimensions
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}

func (CatalogUnit) TableName() string {
	return "catalog_units"
}
