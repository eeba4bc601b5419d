// Package viewstate holds the shared UI state behind the dual-pane file
// browser: per panel, the currently selected node, the last fetched
// listing and the remembered page size. The store is process-wide and
// mutated by every navigation; concurrent navigations are not coordinated,
// so the last write wins.
package viewstate

import (
	"sync"

	"docshelf_app_echo/internal/models"
)

// Panel names of the dual-pane browser.
const (
	PanelMain      = "main"
	PanelSecondary = "secondary"
)

// BreadcrumbItem is one ancestor on a node's path.
type BreadcrumbItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NodeRef identifies the node a panel is pointed at. Breadcrumb is nil
// until resolved lazily; a fresh selection always starts without one.
type NodeRef struct {
	ID         string           `json:"id"`
	CType      string           `json:"ctype"`
	Breadcrumb []BreadcrumbItem `json:"breadcrumb"`
}

// Listing is one fetched page of folder children.
type Listing = models.Paginated[models.Node]

// PanelState is the per-panel slice of the store. LastPageSize is a sticky
// preference: it survives navigations and is only updated by a successful
// listing fetch.
type PanelState struct {
	CurrentNode  *NodeRef `json:"current_node"`
	Listing      *Listing `json:"listing"`
	LastPageSize int      `json:"last_page_size"`
}

// Store is the shared view state for all panels.
type Store struct {
	mu     sync.RWMutex
	panels map[string]*PanelState
}

// NewStore creates an empty view-state store.
func NewStore() *Store {
	return &Store{panels: make(map[string]*PanelState)}
}

func (s *Store) panel(name string) *PanelState {
	p, ok := s.panels[name]
	if !ok {
		p = &PanelState{}
		s.panels[name] = p
	}
	return p
}

// SetCurrentNode points the panel at a node. The previous listing is kept
// until the next fetch replaces it, so a failed fetch leaves the panel
// selected with stale or missing content.
func (s *Store) SetCurrentNode(panel string, node NodeRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := node
	s.panel(panel).CurrentNode = &n
}

// CurrentNode returns the panel's selected node, if any.
func (s *Store) CurrentNode(panel string) (NodeRef, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.panels[panel]
	if !ok || p.CurrentNode == nil {
		return NodeRef{}, false
	}
	return *p.CurrentNode, true
}

// SetListing stores a fetched page for the panel and remembers its page
// size as the panel's sticky preference.
func (s *Store) SetListing(panel string, listing Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.panel(panel)
	l := listing
	p.Listing = &l
	if listing.PageSize > 0 {
		p.LastPageSize = listing.PageSize
	}
}

// Listing returns the panel's last fetched page, if any.
func (s *Store) Listing(panel string) (Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.panels[panel]
	if !ok || p.Listing == nil {
		return Listing{}, false
	}
	return *p.Listing, true
}

// LastPageSize returns the panel's remembered page size, or 0 when the
// panel has never completed a fetch.
func (s *Store) LastPageSize(panel string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.panels[panel]
	if !ok {
		return 0
	}
	return p.LastPageSize
}

// Snapshot returns a copy of the panel's state for serialization.
func (s *Store) Snapshot(panel string) PanelState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.panels[panel]
	if !ok {
		return PanelState{}
	}
	out := PanelState{LastPageSize: p.LastPageSize}
	if p.CurrentNode != nil {
		n := *p.CurrentNode
		out.CurrentNode = &n
	}
	if p.Listing != nil {
		l := *p.Listing
		out.Listing = &l
	}
	return out
}
