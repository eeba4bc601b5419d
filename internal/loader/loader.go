// Package loader implements the folder-listing loader behind the inbox
// view: given the current user and an optional explicit folder id, it
// decides which folder the main panel shows, points the panel at it and
// fetches the first page of its children.
package loader

import (
	"context"
	"fmt"
	"net/url"

	"docshelf_app_echo/internal/models"
	"docshelf_app_echo/internal/viewstate"
)

// DefaultPageSize is used whenever the main panel has no remembered page
// size yet.
const DefaultPageSize = 15

// UserResolver resolves the signed-in user for the current request.
type UserResolver interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// FetchRequest asks for one page of a folder's children, scoped to a panel
// and to the owning user. Fetchers must not return rows of other users.
type FetchRequest struct {
	FolderID   string
	UserID     uint
	Panel      string
	PageNumber int
	PageSize   int
}

// NodeFetcher fetches a page of folder children and writes the result into
// the panel's view state as a side effect.
type NodeFetcher interface {
	FetchPage(ctx context.Context, req FetchRequest) error
}

// PanelStore is the narrow slice of the view state the loader touches.
type PanelStore interface {
	SetCurrentNode(panel string, node viewstate.NodeRef)
	LastPageSize(panel string) int
}

// SessionResolutionError reports that the current user could not be
// resolved. The load aborts before any view-state mutation.
type SessionResolutionError struct {
	Err error
}

func (e *SessionResolutionError) Error() string {
	return fmt.Sprintf("resolve current user: %v", e.Err)
}

func (e *SessionResolutionError) Unwrap() error { return e.Err }

// ListingFetchError reports a failed page fetch. At this point the panel
// selection has already been updated and is intentionally not rolled back;
// the client must treat "selected but no listing" as a visible state.
type ListingFetchError struct {
	FolderID string
	Err      error
}

func (e *ListingFetchError) Error() string {
	return fmt.Sprintf("fetch listing for folder %s: %v", e.FolderID, e.Err)
}

func (e *ListingFetchError) Unwrap() error { return e.Err }

// LoadParams carries the navigation inputs: an optional explicit folder id
// from the route and the request's query parameters for pass-through.
type LoadParams struct {
	FolderID string
	Query    url.Values
}

// LoadResult is returned to the routing layer, e.g. for reflecting state
// into the address bar. URLParams is the original query string, untouched.
type LoadResult struct {
	FolderID  string     `json:"folder_id"`
	URLParams url.Values `json:"url_params"`
}

// FolderLoader orchestrates one navigation into a folder view.
type FolderLoader struct {
	users  UserResolver
	nodes  NodeFetcher
	panels PanelStore
}

// New creates a FolderLoader.
func New(users UserResolver, nodes NodeFetcher, panels PanelStore) *FolderLoader {
	return &FolderLoader{users: users, nodes: nodes, panels: panels}
}

// Load resolves the target folder and loads its first page into the main
// panel. The explicit folder id wins over the user's inbox folder; the
// remembered page size wins over DefaultPageSize; the page number is
// always 1 for this entry point.
//
// The selection write happens before the fetch is issued and is not rolled
// back if the fetch fails. No retries are performed here.
func (l *FolderLoader) Load(ctx context.Context, p LoadParams) (*LoadResult, error) {
	user, err := l.users.CurrentUser(ctx)
	if err != nil {
		return nil, &SessionResolutionError{Err: err}
	}

	folderID := p.FolderID
	if folderID == "" {
		folderID = user.InboxFolderID
	}

	pageSize := l.panels.LastPageSize(viewstate.PanelMain)
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	l.panels.SetCurrentNode(viewstate.PanelMain, viewstate.NodeRef{
		ID:    folderID,
		CType: models.NodeTypeFolder,
	})

	if err := l.nodes.FetchPage(ctx, FetchRequest{
		FolderID:   folderID,
		UserID:     user.ID,
		Panel:      viewstate.PanelMain,
		PageNumber: 1,
		PageSize:   pageSize,
	}); err != nil {
		return nil, &ListingFetchError{FolderID: folderID, Err: err}
	}

	return &LoadResult{FolderID: folderID, URLParams: p.Query}, nil
}
