// Package ui holds the storefront's interactive chrome state: mobile menu
// panels with their shared overlay, the accordion groups, and the
// register/login form toggle. The server keeps one State per client so a
// page reload restores the chrome exactly as the shopper left it.
package ui

import (
	"sync"
)

// Form identifies which auth form is visible. Exactly one is visible at a
// time.
type Form string

const (
	FormRegister Form = "register"
	FormLogin    Form = "login"
)

// Snapshot is the JSON-friendly view of a client's chrome state.
type Snapshot struct {
	ActivePanels  []string `json:"active_panels"`
	OverlayActive bool     `json:"overlay_active"`
	OpenAccordion string   `json:"open_accordion,omitempty"`
	VisibleForm   Form     `json:"visible_form"`
}

// State tracks chrome state for one client. Methods are safe for concurrent
// use; a client's tabs may fire actions at the same time.
type State struct {
	mu            sync.Mutex
	panels        map[string]bool
	panelOrder    []string
	overlay       bool
	openAccordion string
	visibleForm   Form
}

// NewState returns chrome state in its page-load configuration: nothing
// open, register form visible.
func NewState() *State {
	return &State{
		panels:      make(map[string]bool),
		visibleForm: FormRegister,
	}
}

// OpenPanel activates a menu panel and the shared overlay. Panels are
// independent: opening one does not close another.
func (s *State) OpenPanel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.panels[id] {
		s.panels[id] = true
		s.panelOrder = append(s.panelOrder, id)
	}
	s.overlay = true
}

// ClosePanel deactivates a single panel. The overlay stays active while any
// other panel remains open.
func (s *State) ClosePanel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removePanel(id)
	s.overlay = s.anyPanelActive()
}

// DismissOverlay deactivates the overlay and every active panel. Each panel
// treats an overlay click as its own close control, so one dismissal clears
// them all.
func (s *State) DismissOverlay() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.panels = make(map[string]bool)
	s.panelOrder = nil
	s.overlay = false
}

// ToggleAccordion opens the given accordion entry, closing any other open
// entry. Toggling the already-open entry closes it, leaving none open.
func (s *State) ToggleAccordion(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.openAccordion == id {
		s.openAccordion = ""
		return
	}
	s.openAccordion = id
}

// ToggleAuthForm flips which auth form is visible.
func (s *State) ToggleAuthForm() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visibleForm == FormRegister {
		s.visibleForm = FormLogin
	} else {
		s.visibleForm = FormRegister
	}
}

// Snapshot returns a copy of the current state. Active panels are listed in
// the order they were opened.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	panels := make([]string, 0, len(s.panelOrder))
	panels = append(panels, s.panelOrder...)

	return Snapshot{
		ActivePanels:  panels,
		OverlayActive: s.overlay,
		OpenAccordion: s.openAccordion,
		VisibleForm:   s.visibleForm,
	}
}

func (s *State) removePanel(id string) {
	if !s.panels[id] {
		return
	}
	delete(s.panels, id)
	for i, p := range s.panelOrder {
		if p == id {
			s.panelOrder = append(s.panelOrder[:i], s.panelOrder[i+1:]...)
			break
		}
	}
}

func (s *State) anyPanelActive() bool {
	return len(s.panels) > 0
}
