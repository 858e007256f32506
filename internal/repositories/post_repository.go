package repositories

import (
	"gorm.io/gorm"

	"instaschema/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostsByUser(userID uint) ([]models.Post, error)
	DeletePost(id uint) error
}

// GormPostRepository implements PostRepository on the GORM store
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *GormPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *GormPostRepository) GetPostsByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// DeletePost deletes a post by ID. Its comments and media go with it via
// the engine's cascade rules.
func (r *GormPostRepository) DeletePost(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}
