package repository

import (
	"context"
	"strings"
	"time"

	"flightchat-service/internal/domain/repository"
	"flightchat-service/pkg/nlp"

	"gorm.io/gorm"
)

// GormReferenceRepository loads extra airport and airline reference rows
// from PostgreSQL. Rows are merged into the lexicon at startup.
type GormReferenceRepository struct {
	db *gorm.DB
}

// NewGormReferenceRepository creates a new GORM reference repository
func NewGormReferenceRepository(db *gorm.DB) repository.ReferenceRepository {
	return &GormReferenceRepository{
		db: db,
	}
}

// Airports GORM model for database mapping
type Airports struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"column:code;unique"`
	Name      string `gorm:"column:name"`
	Aliases   string `gorm:"column:aliases"` // comma separated
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "m_airports"
}

// Airlines GORM model for database mapping
type Airlines struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"column:code;unique"`
	Name      string `gorm:"column:name"`
	Aliases   string `gorm:"column:aliases"` // comma separated
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airlines) TableName() string {
	return "m_airlines"
}

// ListAirports returns all airport reference rows as lexicon entries
func (r *GormReferenceRepository) ListAirports(ctx context.Context) ([]nlp.AirportEntry, error) {
	var rows []Airports
	result := r.db.WithContext(ctx).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]nlp.AirportEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, nlp.AirportEntry{
			Code:    strings.ToUpper(row.Code),
			Name:    row.Name,
			Aliases: splitAliases(row.Aliases),
		})
	}
	return entries, nil
}

// ListAirlines returns all airline reference rows as lexicon entries
func (r *GormReferenceRepository) ListAirlines(ctx context.Context) ([]nlp.AirlineEntry, error) {
	var rows []Airlines
	result := r.db.WithContext(ctx).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]nlp.AirlineEntry, 0, len(rows))
	for _, row := range rows {
		aliases := splitAliases(row.Aliases)
		if row.Name != "" {
			aliases = append(aliases, row.Name)
		}
		entries = append(entries, nlp.AirlineEntry{
			Code:    strings.ToUpper(row.Code),
			Aliases: aliases,
		})
	}
	return entries, nil
}

func splitAliases(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	aliases := make([]string, 0, len(parts))
	for _, part := range parts {
		alias := strings.ToLower(strings.TrimSpace(part))
		if alias != "" {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}
