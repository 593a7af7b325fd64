package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsprint/internal/screen"
)

// ID names a registered screen.
type ID string

// ShowScreenMsg requests the router to switch to a registered screen.
type ShowScreenMsg struct {
	ID ID
}

// Router switches between a fixed set of registered screens. Exactly one
// is active at a time.
type Router struct {
	screens map[ID]screen.Screen
	active  ID
}

// New creates a Router with initial as the active screen. Init is not
// called for it; the program's Init does that.
func New(id ID, initial screen.Screen) *Router {
	return &Router{
		screens: map[ID]screen.Screen{id: initial},
		active:  id,
	}
}

// Register adds or replaces the screen for id.
func (r *Router) Register(id ID, s screen.Screen) {
	r.screens[id] = s
}

// Show activates the screen for id and runs its Init. Showing the
// active screen again or an unknown id is a no-op.
func (r *Router) Show(id ID) tea.Cmd {
	s, ok := r.screens[id]
	if !ok || id == r.active {
		return nil
	}
	r.active = id
	return s.Init()
}

// ActiveID returns the id of the active screen.
func (r *Router) ActiveID() ID {
	return r.active
}

// Active returns the active screen.
func (r *Router) Active() screen.Screen {
	return r.screens[r.active]
}

// Init runs the active screen's Init.
func (r *Router) Init() tea.Cmd {
	if s := r.Active(); s != nil {
		return s.Init()
	}
	return nil
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ShowScreenMsg); ok {
		return r.Show(msg.ID)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.screens[r.active] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
