package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a colored label a user attaches to nodes. Tag names are unique
// per user.
type Tag struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"type:varchar(100);uniqueIndex:idx_tags_name_user" json:"name"`
	BGColor     string `gorm:"type:varchar(10);default:'#c41fff'" json:"bg_color"`
	FGColor     string `gorm:"type:varchar(10);default:'#ffffff'" json:"fg_color"`
	Description string `gorm:"type:text" json:"description"`
	Pinned      bool   `gorm:"default:false" json:"pinned"`
	UserID      uint   `gorm:"index;uniqueIndex:idx_tags_name_user" json:"user_id"`
}

// BeforeCreate assigns a UUID primary key.
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
