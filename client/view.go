package client

import (
	"context"
	"html/template"
	"sync"
)

// ViewState is the listing view lifecycle: Idle until the first
// operation, Loading while one is in flight, then Rendered or Failed.
type ViewState int

const (
	StateIdle ViewState = iota
	StateLoading
	StateRendered
	StateFailed
)

// View is one committed display result.
type View struct {
	State    ViewState
	HTML     template.HTML
	Listings []Listing
	Controls []PageControl
	Err      error

	token Token
}

// Presenter drives the listing display for a session. Every operation
// re-enters Loading, and the loading flag is always cleared in a defer so
// the spinner cannot be left stuck, even on errors. Results are committed
// only if their sequence token is still current, which discards
// late-arriving responses from superseded operations.
type Presenter struct {
	session *Session

	mu      sync.Mutex
	loading int
	current View
}

func NewPresenter(session *Session) *Presenter {
	return &Presenter{session: session}
}

// Loading reports whether any operation is in flight.
func (p *Presenter) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading > 0
}

// Current returns the last committed view.
func (p *Presenter) Current() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Presenter) beginLoading() {
	p.mu.Lock()
	p.loading++
	p.mu.Unlock()
}

func (p *Presenter) endLoading() {
	p.mu.Lock()
	p.loading--
	p.mu.Unlock()
}

// commitIfCurrent installs the view unless a newer operation has been
// started since its token was issued.
func (p *Presenter) commitIfCurrent(v View) bool {
	if !p.session.Current(v.token) {
		return false
	}
	p.mu.Lock()
	p.current = v
	p.mu.Unlock()
	return true
}

// ShowCategory displays one page of a category, fetching it on a cache
// miss.
func (p *Presenter) ShowCategory(ctx context.Context, category string, page int) View {
	token := p.session.nextToken()
	p.beginLoading()
	defer p.endLoading()

	listings, err := p.session.Listings(ctx, category)
	if err != nil {
		v := View{State: StateFailed, HTML: errorFragment, Err: err, token: token}
		p.commitIfCurrent(v)
		return v
	}

	p.session.setPosition(category, page)

	v := p.renderListings(Paginate(listings, page), PageControls(len(listings), page), token)
	p.commitIfCurrent(v)
	return v
}

// ShowSearch displays keyword search results. Pagination controls are
// omitted, matching the search results view.
func (p *Presenter) ShowSearch(ctx context.Context, query string) View {
	token := p.session.nextToken()
	p.beginLoading()
	defer p.endLoading()

	results, err := p.session.Search(ctx, query)
	if err != nil {
		v := View{State: StateFailed, HTML: errorFragment, Err: err, token: token}
		p.commitIfCurrent(v)
		return v
	}

	v := p.renderListings(results, nil, token)
	p.commitIfCurrent(v)
	return v
}

// ShowFiltered displays advanced-filter results from the local cache.
func (p *Presenter) ShowFiltered(f Filter) View {
	token := p.session.nextToken()
	p.beginLoading()
	defer p.endLoading()

	if f.Category != "" {
		p.session.setPosition(f.Category, 1)
	}

	v := p.renderListings(p.session.ApplyFilter(f), nil, token)
	p.commitIfCurrent(v)
	return v
}

func (p *Presenter) renderListings(listings []Listing, controls []PageControl, token Token) View {
	if len(listings) == 0 {
		// A valid empty state, not a failure.
		return View{State: StateRendered, HTML: noResultsFragment, Listings: listings, token: token}
	}

	html, err := RenderCards(listings)
	if err != nil {
		return View{State: StateFailed, HTML: errorFragment, Err: err, token: token}
	}
	return View{
		State:    StateRendered,
		HTML:     html,
		Listings: listings,
		Controls: controls,
		token:    token,
	}
}
