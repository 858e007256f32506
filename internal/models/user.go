package models

// User represents a registered account. Usernames and emails are unique
// across the whole table; the engine rejects duplicates at insert time.
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Username  string `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	Firstname string `json:"firstname" gorm:"type:varchar(50);not null"`
	Lastname  string `json:"lastname" gorm:"type:varchar(50);not null"`
	Email     string `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`

	// Deleting a user cascades through these relations; media hangs off
	// posts, so it goes with them.
	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	// Directed follow edges where this user is the source / the target.
	Following []Follower `json:"following,omitempty" gorm:"foreignKey:UserFromID;constraint:OnDelete:CASCADE"`
	Followers []Follower `json:"followers,omitempty" gorm:"foreignKey:UserToID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
