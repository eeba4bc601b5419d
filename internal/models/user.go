package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a signed-in actor. Every user owns a node tree with two
// special folders: the inbox (shown when no explicit folder is requested)
// and the home folder (root for regular browsing).
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// UID is the Firebase auth identifier the session cookie resolves to.
	UID   string `gorm:"type:varchar(128);uniqueIndex" json:"uid"`
	Name  string `gorm:"type:varchar(255)" json:"name"`
	Email string `gorm:"type:varchar(255);uniqueIndex" json:"email"`

	// Special folder ids. Empty until the folders are provisioned on first
	// resolve; see services.UserService.
	InboxFolderID string `gorm:"type:uuid" json:"inbox_folder_id"`
	HomeFolderID  string `gorm:"type:uuid" json:"home_folder_id"`

	// Relationships
	Nodes []Node `gorm:"foreignKey:UserID" json:"nodes,omitempty"`
}
