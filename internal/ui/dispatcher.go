package ui

import (
	"fmt"

	apperrors "github.com/gungun-1908/InsightCart/pkg/errors"
)

// Action enumerates the chrome interactions a page element can carry.
// Elements declare their action explicitly instead of being matched by CSS
// class, so dispatch is a map lookup on a closed set.
type Action string

const (
	ActionOpenPanel       Action = "open_panel"
	ActionClosePanel      Action = "close_panel"
	ActionDismissOverlay  Action = "dismiss_overlay"
	ActionToggleAccordion Action = "toggle_accordion"
	ActionToggleAuthForm  Action = "toggle_auth_form"
)

// Request is one chrome interaction from a page element. Target names the
// panel or accordion entry for actions that address one.
type Request struct {
	Action Action `json:"action" validate:"required"`
	Target string `json:"target,omitempty"`
}

// HandlerFunc applies one action to a client's chrome state.
type HandlerFunc func(s *State, target string) error

// Dispatcher routes actions to their registered handlers.
type Dispatcher struct {
	handlers map[Action]HandlerFunc
}

// NewDispatcher returns a dispatcher with the built-in chrome actions
// registered.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{handlers: make(map[Action]HandlerFunc)}

	d.Register(ActionOpenPanel, func(s *State, target string) error {
		if target == "" {
			return apperrors.InvalidInput("open_panel requires a target panel")
		}
		s.OpenPanel(target)
		return nil
	})
	d.Register(ActionClosePanel, func(s *State, target string) error {
		if target == "" {
			return apperrors.InvalidInput("close_panel requires a target panel")
		}
		s.ClosePanel(target)
		return nil
	})
	d.Register(ActionDismissOverlay, func(s *State, _ string) error {
		s.DismissOverlay()
		return nil
	})
	d.Register(ActionToggleAccordion, func(s *State, target string) error {
		if target == "" {
			return apperrors.InvalidInput("toggle_accordion requires a target entry")
		}
		s.ToggleAccordion(target)
		return nil
	})
	d.Register(ActionToggleAuthForm, func(s *State, _ string) error {
		s.ToggleAuthForm()
		return nil
	})

	return d
}

// Register binds an action to a handler, replacing any existing binding.
func (d *Dispatcher) Register(a Action, h HandlerFunc) {
	d.handlers[a] = h
}

// Dispatch applies the request to the given state and returns the resulting
// snapshot. An unregistered action is an input error.
func (d *Dispatcher) Dispatch(s *State, req Request) (Snapshot, error) {
	h, ok := d.handlers[req.Action]
	if !ok {
		return Snapshot{}, apperrors.InvalidInput(fmt.Sprintf("unknown action %q", req.Action))
	}
	if err := h(s, req.Target); err != nil {
		return Snapshot{}, err
	}
	return s.Snapshot(), nil
}
