package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"instaschema/internal/models"
)

// FollowRepository defines the interface for follow-edge operations.
// Followers and following are two explicit directional queries over the
// follower table, not back-references.
type FollowRepository interface {
	Follow(edge *models.Follower) error
	Unfollow(fromID, toID uint) error
	IsFollowing(fromID, toID uint) (bool, error)
	FollowersOf(userID uint) ([]models.User, error)
	FollowingOf(userID uint) ([]models.User, error)
	FollowersCount(userID uint) (int64, error)
}

// GormFollowRepository implements FollowRepository on the GORM store
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GormFollowRepository
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

func (r *GormFollowRepository) Follow(edge *models.Follower) error {
	return r.db.Create(edge).Error
}

func (r *GormFollowRepository) Unfollow(fromID, toID uint) error {
	res := r.db.Where("user_from_id = ? AND user_to_id = ?", fromID, toID).Delete(&models.Follower{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("follow relationship not found")
	}
	return nil
}

func (r *GormFollowRepository) IsFollowing(fromID, toID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follower{}).Where("user_from_id = ? AND user_to_id = ?", fromID, toID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FollowersOf returns the users that follow userID.
func (r *GormFollowRepository) FollowersOf(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follower").Select("user_from_id").Where("user_to_id = ?", userID),
	).Find(&users).Error
	return users, err
}

// FollowingOf returns the users that userID follows.
func (r *GormFollowRepository) FollowingOf(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follower").Select("user_to_id").Where("user_from_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *GormFollowRepository) FollowersCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follower{}).Where("user_to_id = ?", userID).Count(&count).Error
	return count, err
}
