package browse

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pagepeek/pagepeek/internal/fetch"
	"github.com/pagepeek/pagepeek/internal/model"
	"github.com/pagepeek/pagepeek/internal/parse"
	"github.com/pagepeek/pagepeek/internal/platform"
)

// DefaultTimeout is the fixed deadline for one page fetch.
const DefaultTimeout = 20 * time.Second

// Status line literals. Validation and transport failures always use these
// exact strings; the UI shows them verbatim.
const (
	StatusEmptyAddress = "Please enter a URL."
	StatusInvalidURL   = "Invalid URL."
	StatusLoading      = "Loading..."
	StatusTimeout      = "Request timed out."

	StatusNetworkFormat    = "Network error: %v"
	StatusUnexpectedFormat = "Unexpected error: %v"
	StatusSuccessFormat    = "Received %d bytes (HTTP %d %s)."
)

// Non-success explanations for the codes users hit most.
const (
	StatusBadRequest = "HTTP 400 Bad Request. The server could not understand the request."
	StatusForbidden  = "HTTP 403 Forbidden. Access to this page is not allowed."
	StatusNotFound   = "HTTP 404 Not Found. The page does not exist on this server."
)

// Service orchestrates page loads: it validates and normalizes the address,
// runs the single-flight fetch, decodes the body, parses it, and pushes every
// result into the observable State.
type Service struct {
	state   *State
	fetcher fetch.Fetcher
	parser  func(string) (*model.PageSummary, error)
	timeout time.Duration

	// showLoading controls whether a "Loading..." status is pushed at fetch
	// start; some users prefer less status churn.
	showLoading bool

	mu       sync.Mutex
	inFlight bool
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTimeout sets the per-fetch deadline.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLoadingStatus controls whether fetch start pushes a loading status.
func WithLoadingStatus(show bool) ServiceOption {
	return func(s *Service) {
		s.showLoading = show
	}
}

// NewService creates the fetch orchestrator around the given transport.
// homeAddress seeds the displayed address.
func NewService(fetcher fetch.Fetcher, homeAddress string, opts ...ServiceOption) *Service {
	s := &Service{
		state:       NewState(homeAddress),
		fetcher:     fetcher,
		parser:      parse.Extract,
		timeout:     DefaultTimeout,
		showLoading: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the observable page state backing this service.
func (s *Service) State() *State {
	return s.state
}

// Fetch starts loading the given address. Validation happens synchronously;
// the network round trip runs on its own goroutine. A call while a fetch is
// already in flight is suppressed.
func (s *Service) Fetch(address string) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		s.state.SetLastError(ErrorEmptyAddress)
		s.state.SetStatus(StatusEmptyAddress)
		return
	}

	target, normalized, ok := normalizeAddress(trimmed)
	if !ok {
		s.state.SetLastError(ErrorInvalidURL)
		s.state.SetStatus(StatusInvalidURL)
		return
	}

	// The normalized form replaces what the user typed
	if normalized {
		s.state.SetAddress(target)
	}

	if !s.begin() {
		log.Printf("fetch suppressed, already in flight: %s", target)
		return
	}

	s.state.SetBusy(true)
	s.state.SetLoadState(model.LoadStateLoading)
	s.state.SetHTMLSource("")
	if s.showLoading {
		s.state.SetStatus(StatusLoading)
	}

	go s.run(target)
}

// run performs the network round trip and all downstream decoding/parsing.
// The busy flag is released on every exit path.
func (s *Service) run(target string) {
	defer s.end()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	resp, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		s.fail(err)
		return
	}

	text := platform.DecodeText(resp.Body, resp.ContentType)
	s.state.SetHTMLSource(text)
	s.state.SetStatus(responseStatus(resp))

	// Non-2xx bodies still get parsed; error pages carry titles and links too
	s.applySummary(text)
	s.state.SetLoadState(model.LoadStateComplete)
}

// fail records a transport-level failure. Parsed state is cleared; the raw
// HTML field is left alone, it was already reset at fetch start.
func (s *Service) fail(err error) {
	kind, msg := classifyError(err)
	log.Printf("fetch failed (%s): %v", kind, err)

	s.state.SetPageTitle("")
	s.state.SetLinks(nil)
	s.state.SetLastError(kind)
	s.state.SetStatus(msg)
	s.state.SetLoadState(model.LoadStateFailed)
}

// applySummary parses decoded HTML into the state. A parser failure clears
// the parsed fields without touching the status line; ErrorParse in the
// state is the only signal.
func (s *Service) applySummary(text string) {
	summary, err := s.parser(text)
	if err != nil {
		log.Printf("parse failed: %v", err)
		s.state.SetPageTitle("")
		s.state.SetLinks(nil)
		s.state.SetLastError(ErrorParse)
		return
	}

	s.state.SetPageTitle(summary.Title)
	s.state.SetLinks(summary.Links)
	s.state.SetLastError(ErrorNone)
}

// begin claims the single-flight slot, false if a fetch already holds it.
func (s *Service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

// end releases the single-flight slot and drops the busy flag.
func (s *Service) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
	s.state.SetBusy(false)
}

// normalizeAddress turns user input into an absolute URL. Schemeless input
// is retried with an https prefix; normalized reports whether that rewrite
// happened, so the caller knows to update the displayed address.
func normalizeAddress(address string) (target string, normalized, ok bool) {
	if u, err := url.Parse(address); err == nil && u.Scheme != "" && u.Host != "" {
		return address, false, true
	}

	u, err := url.Parse("https://" + address)
	if err != nil || u.Host == "" {
		return "", false, false
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), true, true
}

// classifyError maps a transport error to its kind and status line.
func classifyError(err error) (ErrorKind, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTimeout, StatusTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorTimeout, StatusTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ErrorNetwork, fmt.Sprintf(StatusNetworkFormat, urlErr.Err)
	}

	return ErrorUnexpected, fmt.Sprintf(StatusUnexpectedFormat, err)
}

// responseStatus renders the status line for a completed HTTP exchange.
func responseStatus(resp *model.FetchResponse) string {
	if resp.IsSuccess() {
		return fmt.Sprintf(StatusSuccessFormat, len(resp.Body), resp.StatusCode, resp.Reason())
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return StatusBadRequest
	case http.StatusForbidden:
		return StatusForbidden
	case http.StatusNotFound:
		return StatusNotFound
	default:
		return fmt.Sprintf("HTTP %d %s", resp.StatusCode, resp.Reason())
	}
}
