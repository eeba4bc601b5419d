package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NodeType discriminates folders from documents without an extra join.
const (
	NodeTypeFolder   = "folder"
	NodeTypeDocument = "document"
)

// Titles of the per-user special folders.
const (
	FolderTitleInbox = "inbox"
	FolderTitleHome  = "home"
)

// Node is one entry in a user's document tree: either a folder or a
// document. Nodes are hard-deleted; a soft delete would break the
// title-unique-per-parent constraint.
type Node struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ParentID is nil for the per-user root folders (inbox, home). The
	// composite unique index ignores NULL parents, so root titles get
	// their own partial index.
	ParentID *string `gorm:"type:uuid;index;uniqueIndex:idx_nodes_parent_title_user" json:"parent_id"`
	CType    string  `gorm:"type:varchar(16);index" json:"ctype"`
	Title    string  `gorm:"type:varchar(200);uniqueIndex:idx_nodes_parent_title_user;uniqueIndex:idx_nodes_root_title_user,where:parent_id IS NULL" json:"title"`
	Lang     string  `gorm:"type:varchar(8);default:'eng'" json:"lang"`
	UserID   uint    `gorm:"index;uniqueIndex:idx_nodes_parent_title_user;uniqueIndex:idx_nodes_root_title_user" json:"user_id"`

	// Relationships
	Parent   *Node  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []Node `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Tags     []Tag  `gorm:"many2many:node_tags;" json:"tags,omitempty"`
}

// BeforeCreate assigns a UUID and defaults the node type to folder.
func (n *Node) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CType == "" {
		n.CType = NodeTypeFolder
	}
	return nil
}

// IsFolder reports whether this node is a folder.
func (n *Node) IsFolder() bool {
	return n.CType == NodeTypeFolder
}

// IsDocument reports whether this node is a document.
func (n *Node) IsDocument() bool {
	return n.CType == NodeTypeDocument
}
