package browse

import "sync"

// Command is a UI-invocable action with observable enablement. Implementations
// carry no toolkit types; the UI layer maps CanExecute onto whatever
// enable/disable mechanism it has.
type Command interface {
	Execute()
	CanExecute() bool
}

// FetchCommand triggers a page load for whatever address the bound provider
// currently holds. It is disabled while a fetch is in flight and notifies
// subscribers when that changes.
type FetchCommand struct {
	service *Service
	address func() string

	mu        sync.Mutex
	listeners []func()
}

// NewFetchCommand creates the fetch action. address is polled at execute
// time, typically bound to the UI's address entry.
func NewFetchCommand(service *Service, address func() string) *FetchCommand {
	c := &FetchCommand{
		service: service,
		address: address,
	}

	// Enablement tracks the busy flag
	service.State().Subscribe(func(f Field) {
		if f == FieldBusy {
			c.notifyCanExecuteChanged()
		}
	})

	return c
}

// Execute starts a fetch unless one is already running.
func (c *FetchCommand) Execute() {
	if !c.CanExecute() {
		return
	}
	c.service.Fetch(c.address())
}

// CanExecute reports whether a fetch may be started now.
func (c *FetchCommand) CanExecute() bool {
	return !c.service.State().Busy()
}

// OnCanExecuteChanged registers a callback fired whenever enablement flips.
func (c *FetchCommand) OnCanExecuteChanged(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// notifyCanExecuteChanged fires the registered enablement callbacks.
func (c *FetchCommand) notifyCanExecuteChanged() {
	c.mu.Lock()
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// ToggleHTMLCommand flips the raw HTML panel visibility. Always executable.
type ToggleHTMLCommand struct {
	service *Service
}

// NewToggleHTMLCommand creates the visibility toggle action.
func NewToggleHTMLCommand(service *Service) *ToggleHTMLCommand {
	return &ToggleHTMLCommand{service: service}
}

// Execute flips the ShowHTML flag.
func (c *ToggleHTMLCommand) Execute() {
	st := c.service.State()
	st.SetShowHTML(!st.ShowHTML())
}

// CanExecute always returns true; the toggle has no disabled state.
func (c *ToggleHTMLCommand) CanExecute() bool {
	return true
}
