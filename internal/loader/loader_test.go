package loader

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"docshelf_app_echo/internal/models"
	"docshelf_app_echo/internal/viewstate"
)

// opLog records the order of side effects across the fakes.
type opLog struct {
	ops []string
}

type fakeResolver struct {
	user  *models.User
	err   error
	calls int
}

func (f *fakeResolver) CurrentUser(ctx context.Context) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakePanelStore struct {
	log          *opLog
	lastPageSize int
	setNodes     []viewstate.NodeRef
	setPanels    []string
}

func (f *fakePanelStore) SetCurrentNode(panel string, node viewstate.NodeRef) {
	f.log.ops = append(f.log.ops, "set-current-node")
	f.setPanels = append(f.setPanels, panel)
	f.setNodes = append(f.setNodes, node)
}

func (f *fakePanelStore) LastPageSize(panel string) int {
	return f.lastPageSize
}

type fakeFetcher struct {
	log  *opLog
	err  error
	reqs []FetchRequest
}

func (f *fakeFetcher) FetchPage(ctx context.Context, req FetchRequest) error {
	f.log.ops = append(f.log.ops, "fetch-page")
	f.reqs = append(f.reqs, req)
	return f.err
}

func newTestLoader(user *models.User) (*FolderLoader, *fakeResolver, *fakeFetcher, *fakePanelStore) {
	log := &opLog{}
	resolver := &fakeResolver{user: user}
	fetcher := &fakeFetcher{log: log}
	panels := &fakePanelStore{log: log}
	return New(resolver, fetcher, panels), resolver, fetcher, panels
}

func testUser() *models.User {
	return &models.User{ID: 1, UID: "uid-1", InboxFolderID: "inbox-1", HomeFolderID: "home-1"}
}

func TestLoadFolderResolution(t *testing.T) {
	tests := []struct {
		name         string
		explicitID   string
		wantFolderID string
	}{
		{
			name:         "explicit folder id wins over inbox",
			explicitID:   "f-42",
			wantFolderID: "f-42",
		},
		{
			name:         "empty folder id falls back to inbox",
			explicitID:   "",
			wantFolderID: "inbox-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, fetcher, panels := newTestLoader(testUser())

			res, err := l.Load(context.Background(), LoadParams{FolderID: tt.explicitID})
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if res.FolderID != tt.wantFolderID {
				t.Errorf("FolderID = %q; want %q", res.FolderID, tt.wantFolderID)
			}
			if len(fetcher.reqs) != 1 {
				t.Fatalf("fetch calls = %d; want 1", len(fetcher.reqs))
			}
			if fetcher.reqs[0].FolderID != tt.wantFolderID {
				t.Errorf("fetched folder = %q; want %q", fetcher.reqs[0].FolderID, tt.wantFolderID)
			}
			if len(panels.setNodes) != 1 || panels.setNodes[0].ID != tt.wantFolderID {
				t.Errorf("selection = %+v; want node %q", panels.setNodes, tt.wantFolderID)
			}
		})
	}
}

func TestLoadPageSize(t *testing.T) {
	tests := []struct {
		name         string
		lastPageSize int
		wantPageSize int
	}{
		{"no remembered page size uses default", 0, DefaultPageSize},
		{"negative remembered page size uses default", -5, DefaultPageSize},
		{"remembered page size wins", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, fetcher, panels := newTestLoader(testUser())
			panels.lastPageSize = tt.lastPageSize

			if _, err := l.Load(context.Background(), LoadParams{}); err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			req := fetcher.reqs[0]
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d; want %d", req.PageSize, tt.wantPageSize)
			}
			if req.PageNumber != 1 {
				t.Errorf("PageNumber = %d; want 1", req.PageNumber)
			}
		})
	}
}

func TestLoadAlwaysStartsAtPageOne(t *testing.T) {
	l, _, fetcher, panels := newTestLoader(testUser())
	panels.lastPageSize = 100

	if _, err := l.Load(context.Background(), LoadParams{FolderID: "f-7"}); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := fetcher.reqs[0].PageNumber; got != 1 {
		t.Errorf("PageNumber = %d; want 1", got)
	}
}

func TestLoadScopesFetchToResolvedUser(t *testing.T) {
	l, _, fetcher, _ := newTestLoader(testUser())

	if _, err := l.Load(context.Background(), LoadParams{FolderID: "f-9"}); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := fetcher.reqs[0].UserID; got != 1 {
		t.Errorf("fetch UserID = %d; want 1 (the resolved user)", got)
	}
}

func TestLoadSelectionBeforeFetch(t *testing.T) {
	l, _, fetcher, panels := newTestLoader(testUser())

	if _, err := l.Load(context.Background(), LoadParams{FolderID: "f-42"}); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantOps := []string{"set-current-node", "fetch-page"}
	if len(panels.log.ops) != len(wantOps) {
		t.Fatalf("ops = %v; want %v", panels.log.ops, wantOps)
	}
	for i, op := range wantOps {
		if panels.log.ops[i] != op {
			t.Fatalf("ops = %v; want %v", panels.log.ops, wantOps)
		}
	}

	node := panels.setNodes[0]
	if node.CType != models.NodeTypeFolder {
		t.Errorf("selection ctype = %q; want folder", node.CType)
	}
	if node.Breadcrumb != nil {
		t.Errorf("selection breadcrumb = %v; want nil", node.Breadcrumb)
	}
	if panels.setPanels[0] != viewstate.PanelMain {
		t.Errorf("selection panel = %q; want %q", panels.setPanels[0], viewstate.PanelMain)
	}
	if fetcher.reqs[0].Panel != viewstate.PanelMain {
		t.Errorf("fetch panel = %q; want %q", fetcher.reqs[0].Panel, viewstate.PanelMain)
	}
}

func TestLoadSessionFailureIsFailFast(t *testing.T) {
	log := &opLog{}
	cause := errors.New("no session")
	resolver := &fakeResolver{err: cause}
	fetcher := &fakeFetcher{log: log}
	panels := &fakePanelStore{log: log}
	l := New(resolver, fetcher, panels)

	_, err := l.Load(context.Background(), LoadParams{FolderID: "f-42"})
	if err == nil {
		t.Fatal("Load returned nil error")
	}

	var sessionErr *SessionResolutionError
	if !errors.As(err, &sessionErr) {
		t.Fatalf("error type = %T; want *SessionResolutionError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("error does not unwrap to the resolver failure")
	}
	if len(log.ops) != 0 {
		t.Errorf("side effects after session failure: %v; want none", log.ops)
	}
}

func TestLoadFetchFailureKeepsSelection(t *testing.T) {
	log := &opLog{}
	cause := errors.New("backend down")
	resolver := &fakeResolver{user: testUser()}
	fetcher := &fakeFetcher{log: log, err: cause}
	panels := &fakePanelStore{log: log}
	l := New(resolver, fetcher, panels)

	_, err := l.Load(context.Background(), LoadParams{FolderID: "f-42"})
	if err == nil {
		t.Fatal("Load returned nil error")
	}

	var fetchErr *ListingFetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T; want *ListingFetchError", err)
	}
	if fetchErr.FolderID != "f-42" {
		t.Errorf("FolderID = %q; want f-42", fetchErr.FolderID)
	}
	if !errors.Is(err, cause) {
		t.Error("error does not unwrap to the fetch failure")
	}

	// The selection write is not rolled back.
	if len(panels.setNodes) != 1 || panels.setNodes[0].ID != "f-42" {
		t.Errorf("selection after fetch failure = %+v; want node f-42", panels.setNodes)
	}
}

func TestLoadPassesQueryThrough(t *testing.T) {
	l, _, _, _ := newTestLoader(testUser())

	query := url.Values{"sort": {"title"}, "filter": {"pdf", "txt"}}
	res, err := l.Load(context.Background(), LoadParams{FolderID: "f-1", Query: query})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if res.URLParams.Get("sort") != "title" {
		t.Errorf("URLParams[sort] = %q; want title", res.URLParams.Get("sort"))
	}
	if got := res.URLParams["filter"]; len(got) != 2 || got[0] != "pdf" || got[1] != "txt" {
		t.Errorf("URLParams[filter] = %v; want [pdf txt]", got)
	}
}

func TestLoadScenarioExplicitFolderNoRememberedSize(t *testing.T) {
	l, _, fetcher, panels := newTestLoader(testUser())

	query := url.Values{"q": {"x"}}
	res, err := l.Load(context.Background(), LoadParams{FolderID: "f-42", Query: query})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	req := fetcher.reqs[0]
	if req.PageSize != DefaultPageSize || req.PageNumber != 1 {
		t.Errorf("request = %+v; want page 1 with default size", req)
	}
	if req.UserID != 1 {
		t.Errorf("request UserID = %d; want 1", req.UserID)
	}
	node := panels.setNodes[0]
	if node.ID != "f-42" || node.CType != models.NodeTypeFolder || node.Breadcrumb != nil {
		t.Errorf("selection = %+v; want {f-42 folder nil}", node)
	}
	if res.FolderID != "f-42" || res.URLParams.Get("q") != "x" {
		t.Errorf("result = %+v; want folder f-42 with original query", res)
	}
}

func TestLoadScenarioInboxWithRememberedSize(t *testing.T) {
	l, _, fetcher, panels := newTestLoader(testUser())
	panels.lastPageSize = 50

	res, err := l.Load(context.Background(), LoadParams{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if res.FolderID != "inbox-1" {
		t.Errorf("FolderID = %q; want inbox-1", res.FolderID)
	}
	if fetcher.reqs[0].PageSize != 50 {
		t.Errorf("PageSize = %d; want 50", fetcher.reqs[0].PageSize)
	}
	if panels.setNodes[0].ID != "inbox-1" {
		t.Errorf("selection = %+v; want inbox-1", panels.setNodes[0])
	}
}
