package viewstate

import (
	"testing"

	"docshelf_app_echo/internal/models"
)

func TestSetCurrentNode(t *testing.T) {
	s := NewStore()

	if _, ok := s.CurrentNode(PanelMain); ok {
		t.Fatal("fresh store reported a selected node")
	}

	s.SetCurrentNode(PanelMain, NodeRef{ID: "f-1", CType: models.NodeTypeFolder})
	node, ok := s.CurrentNode(PanelMain)
	if !ok {
		t.Fatal("selected node not found after SetCurrentNode")
	}
	if node.ID != "f-1" || node.CType != models.NodeTypeFolder {
		t.Errorf("node = %+v; want {f-1 folder}", node)
	}

	// Panels are independent.
	if _, ok := s.CurrentNode(PanelSecondary); ok {
		t.Error("secondary panel inherited the main panel's selection")
	}

	// Last write wins.
	s.SetCurrentNode(PanelMain, NodeRef{ID: "f-2", CType: models.NodeTypeFolder})
	node, _ = s.CurrentNode(PanelMain)
	if node.ID != "f-2" {
		t.Errorf("node after overwrite = %q; want f-2", node.ID)
	}
}

func TestSetListingRemembersPageSize(t *testing.T) {
	s := NewStore()

	if got := s.LastPageSize(PanelMain); got != 0 {
		t.Fatalf("LastPageSize on fresh store = %d; want 0", got)
	}

	s.SetListing(PanelMain, Listing{
		Items:      []models.Node{{ID: "n-1", Title: "report", CType: models.NodeTypeDocument}},
		PageSize:   50,
		PageNumber: 1,
		NumPages:   3,
	})

	if got := s.LastPageSize(PanelMain); got != 50 {
		t.Errorf("LastPageSize = %d; want 50", got)
	}
	listing, ok := s.Listing(PanelMain)
	if !ok || len(listing.Items) != 1 || listing.NumPages != 3 {
		t.Errorf("listing = %+v, ok = %v; want one item over 3 pages", listing, ok)
	}

	// A listing without a positive page size does not clobber the sticky
	// preference.
	s.SetListing(PanelMain, Listing{PageSize: 0})
	if got := s.LastPageSize(PanelMain); got != 50 {
		t.Errorf("LastPageSize after zero-size listing = %d; want 50", got)
	}
}

func TestSelectionSurvivesWithoutListing(t *testing.T) {
	s := NewStore()

	// A navigation writes the selection first; if the fetch then fails the
	// panel stays selected with no listing.
	s.SetCurrentNode(PanelMain, NodeRef{ID: "f-9", CType: models.NodeTypeFolder})

	if _, ok := s.Listing(PanelMain); ok {
		t.Error("listing present although no fetch completed")
	}
	node, ok := s.CurrentNode(PanelMain)
	if !ok || node.ID != "f-9" {
		t.Errorf("selection = %+v, ok = %v; want f-9", node, ok)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	s.SetCurrentNode(PanelMain, NodeRef{ID: "f-1", CType: models.NodeTypeFolder})
	s.SetListing(PanelMain, Listing{PageSize: 10, PageNumber: 1, NumPages: 1})

	snap := s.Snapshot(PanelMain)
	if snap.CurrentNode == nil || snap.CurrentNode.ID != "f-1" {
		t.Fatalf("snapshot node = %+v; want f-1", snap.CurrentNode)
	}
	if snap.LastPageSize != 10 {
		t.Errorf("snapshot LastPageSize = %d; want 10", snap.LastPageSize)
	}

	// Mutating the snapshot must not leak into the store.
	snap.CurrentNode.ID = "mutated"
	node, _ := s.CurrentNode(PanelMain)
	if node.ID != "f-1" {
		t.Errorf("store selection = %q after snapshot mutation; want f-1", node.ID)
	}

	empty := s.Snapshot(PanelSecondary)
	if empty.CurrentNode != nil || empty.Listing != nil || empty.LastPageSize != 0 {
		t.Errorf("snapshot of untouched panel = %+v; want zero value", empty)
	}
}
