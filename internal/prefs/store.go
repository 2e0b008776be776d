package prefs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Preference is one user's ordered position wishlist for one guild,
// most-preferred label first. It lives independently of board state and
// survives formation changes.
type Preference struct {
	ID        uint   `gorm:"primaryKey"`
	GuildID   string `gorm:"uniqueIndex:idx_prefs_guild_user"`
	UserID    string `gorm:"uniqueIndex:idx_prefs_guild_user"`
	Labels    string
	UpdatedAt time.Time
}

// Store is the durable preference store backed by SQLite.
type Store struct {
	db *gorm.DB
}

// Open establishes the SQLite connection and migrates the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("preference database path is required")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	store, err := NewStore(db)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Msg("preference store opened")
	return store, nil
}

// NewStore wraps an existing gorm connection, migrating the schema.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Preference{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get returns the stored label list for a user, empty when none is set.
func (s *Store) Get(guildID, userID string) ([]string, error) {
	var pref Preference
	err := s.db.Where("guild_id = ? AND user_id = ?", guildID, userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if pref.Labels == "" {
		return nil, nil
	}
	return strings.Split(pref.Labels, ","), nil
}

// Set durably replaces the label list for a user.
func (s *Store) Set(guildID, userID string, labels []string) error {
	pref := Preference{
		GuildID:   guildID,
		UserID:    userID,
		Labels:    strings.Join(labels, ","),
		UpdatedAt: time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"labels", "updated_at"}),
	}).Create(&pref).Error
}
