package repositories

import (
	"gorm.io/gorm"

	"instaschema/internal/models"
)

// MediaRepository defines the interface for media data operations
type MediaRepository interface {
	CreateMedia(media *models.Media) error
	GetMediaByPost(postID uint) ([]models.Media, error)
	DeleteMedia(id uint) error
}

// GormMediaRepository implements MediaRepository on the GORM store
type GormMediaRepository struct {
	db *gorm.DB
}

// NewGormMediaRepository creates a new GormMediaRepository
func NewGormMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

// CreateMedia inserts a media row. A type outside IMAGE/VIDEO/GIF fails
// the table's CHECK constraint.
func (r *GormMediaRepository) CreateMedia(media *models.Media) error {
	return r.db.Create(media).Error
}

func (r *GormMediaRepository) GetMediaByPost(postID uint) ([]models.Media, error) {
	var media []models.Media
	if err := r.db.Where("post_id = ?", postID).Order("uploaded_at ASC").Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (r *GormMediaRepository) DeleteMedia(id uint) error {
	return r.db.Delete(&models.Media{}, id).Error
}
