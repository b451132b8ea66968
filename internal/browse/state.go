package browse

import (
	"sync"

	"github.com/pagepeek/pagepeek/internal/model"
)

// Field identifies one observable page state value.
type Field string

const (
	FieldAddress    Field = "address"
	FieldHTMLSource Field = "html_source"
	FieldStatus     Field = "status"
	FieldBusy       Field = "busy"
	FieldPageTitle  Field = "page_title"
	FieldLinks      Field = "links"
	FieldLinkCount  Field = "link_count"
	FieldShowHTML   Field = "show_html"
	FieldLastError  Field = "last_error"
	FieldLoadState  Field = "load_state"
)

// ErrorKind classifies the outcome of the last fetch attempt.
type ErrorKind int

const (
	// ErrorNone means the last fetch produced no error
	ErrorNone ErrorKind = iota

	// ErrorEmptyAddress means the address field was blank
	ErrorEmptyAddress

	// ErrorInvalidURL means the address could not be parsed, even with an https prefix
	ErrorInvalidURL

	// ErrorTimeout means the request exceeded its deadline
	ErrorTimeout

	// ErrorNetwork means the transport failed below HTTP
	ErrorNetwork

	// ErrorUnexpected means a failure outside the known taxonomy
	ErrorUnexpected

	// ErrorParse means the fetched body could not be parsed; the status
	// line is left untouched in this case, so this kind is the only signal
	ErrorParse
)

// String returns the string representation of ErrorKind
func (e ErrorKind) String() string {
	switch e {
	case ErrorNone:
		return "None"
	case ErrorEmptyAddress:
		return "EmptyAddress"
	case ErrorInvalidURL:
		return "InvalidURL"
	case ErrorTimeout:
		return "Timeout"
	case ErrorNetwork:
		return "Network"
	case ErrorUnexpected:
		return "Unexpected"
	case ErrorParse:
		return "Parse"
	default:
		return "Unknown"
	}
}

// Listener receives the field that changed. Listeners run synchronously on
// the goroutine performing the mutation; UI layers marshal to their own
// thread themselves.
type Listener func(Field)

// State is the observable page state: one writer (the fetch orchestrator),
// any number of subscribers. Every setter compares before notifying, so
// listeners only fire on real changes. Links are replaced wholesale and the
// derived link count notifies alongside them.
type State struct {
	mu         sync.RWMutex
	address    string
	htmlSource string
	status     string
	pageTitle  string
	busy       bool
	showHTML   bool
	links      []model.ParsedLink
	lastError  ErrorKind
	loadState  model.LoadState

	listenerMu sync.Mutex
	listeners  []Listener
}

// NewState creates page state with the given starting address.
func NewState(address string) *State {
	return &State{
		address:   address,
		links:     make([]model.ParsedLink, 0),
		loadState: model.LoadStateIdle,
		showHTML:  true,
	}
}

// Subscribe registers a listener for field changes.
func (st *State) Subscribe(l Listener) {
	st.listenerMu.Lock()
	defer st.listenerMu.Unlock()
	st.listeners = append(st.listeners, l)
}

// notify fires all listeners for the given fields, outside the value lock.
func (st *State) notify(fields ...Field) {
	st.listenerMu.Lock()
	listeners := make([]Listener, len(st.listeners))
	copy(listeners, st.listeners)
	st.listenerMu.Unlock()

	for _, l := range listeners {
		for _, f := range fields {
			l(f)
		}
	}
}

// Address returns the displayed address.
func (st *State) Address() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.address
}

// SetAddress updates the displayed address.
func (st *State) SetAddress(address string) {
	st.mu.Lock()
	if st.address == address {
		st.mu.Unlock()
		return
	}
	st.address = address
	st.mu.Unlock()
	st.notify(FieldAddress)
}

// HTMLSource returns the decoded raw HTML of the last fetch.
func (st *State) HTMLSource() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.htmlSource
}

// SetHTMLSource updates the decoded raw HTML.
func (st *State) SetHTMLSource(source string) {
	st.mu.Lock()
	if st.htmlSource == source {
		st.mu.Unlock()
		return
	}
	st.htmlSource = source
	st.mu.Unlock()
	st.notify(FieldHTMLSource)
}

// Status returns the human-readable status line.
func (st *State) Status() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.status
}

// SetStatus updates the status line.
func (st *State) SetStatus(status string) {
	st.mu.Lock()
	if st.status == status {
		st.mu.Unlock()
		return
	}
	st.status = status
	st.mu.Unlock()
	st.notify(FieldStatus)
}

// Busy reports whether a fetch is in flight.
func (st *State) Busy() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.busy
}

// SetBusy updates the busy flag.
func (st *State) SetBusy(busy bool) {
	st.mu.Lock()
	if st.busy == busy {
		st.mu.Unlock()
		return
	}
	st.busy = busy
	st.mu.Unlock()
	st.notify(FieldBusy)
}

// PageTitle returns the parsed page title.
func (st *State) PageTitle() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.pageTitle
}

// SetPageTitle updates the parsed page title.
func (st *State) SetPageTitle(title string) {
	st.mu.Lock()
	if st.pageTitle == title {
		st.mu.Unlock()
		return
	}
	st.pageTitle = title
	st.mu.Unlock()
	st.notify(FieldPageTitle)
}

// Links returns the current link list. The slice is replaced wholesale on
// every parse; callers must not mutate it.
func (st *State) Links() []model.ParsedLink {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.links
}

// LinkCount returns the number of links on the current page.
func (st *State) LinkCount() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.links)
}

// SetLinks replaces the link list. A nil slice clears it.
func (st *State) SetLinks(links []model.ParsedLink) {
	if links == nil {
		links = make([]model.ParsedLink, 0)
	}

	st.mu.Lock()
	if linksEqual(st.links, links) {
		st.mu.Unlock()
		return
	}
	st.links = links
	st.mu.Unlock()
	st.notify(FieldLinks, FieldLinkCount)
}

// ShowHTML reports whether the raw HTML panel is visible.
func (st *State) ShowHTML() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.showHTML
}

// SetShowHTML updates the raw HTML visibility flag.
func (st *State) SetShowHTML(show bool) {
	st.mu.Lock()
	if st.showHTML == show {
		st.mu.Unlock()
		return
	}
	st.showHTML = show
	st.mu.Unlock()
	st.notify(FieldShowHTML)
}

// LastError returns the classified outcome of the last fetch attempt.
func (st *State) LastError() ErrorKind {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.lastError
}

// SetLastError updates the classified fetch outcome.
func (st *State) SetLastError(kind ErrorKind) {
	st.mu.Lock()
	if st.lastError == kind {
		st.mu.Unlock()
		return
	}
	st.lastError = kind
	st.mu.Unlock()
	st.notify(FieldLastError)
}

// LoadState returns the fetch lifecycle state.
func (st *State) LoadState() model.LoadState {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.loadState
}

// SetLoadState updates the fetch lifecycle state.
func (st *State) SetLoadState(ls model.LoadState) {
	st.mu.Lock()
	if st.loadState == ls {
		st.mu.Unlock()
		return
	}
	st.loadState = ls
	st.mu.Unlock()
	st.notify(FieldLoadState)
}

// linksEqual compares two link lists by value.
func linksEqual(a, b []model.ParsedLink) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
