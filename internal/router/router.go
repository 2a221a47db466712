// Package router keeps the stack of open screens. The dashboard sits at the
// bottom; course and placeholder screens are pushed over it.
package router

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathdash/internal/screen"
)

// PushScreenMsg opens Screen over the active one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the active screen unless it is the root.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen for Screen without changing the
// depth, used when stepping between sibling course screens.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router routes messages to the active screen.
type Router struct {
	stack []screen.Screen
}

// New creates a Router rooted at root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

// Push opens s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen. The root is never popped.
func (r *Router) Pop() tea.Cmd {
	if r.top() > 0 {
		r.stack[r.top()] = nil
		r.stack = r.stack[:r.top()]
	}
	return nil
}

// Replace swaps the active screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[r.top()] = s
	return s.Init()
}

// Active returns the screen receiving input.
func (r *Router) Active() screen.Screen {
	return r.stack[r.top()]
}

// Depth returns the number of open screens, root included.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Trail joins the titles of the open screens, root first, as a breadcrumb.
func (r *Router) Trail(sep string) string {
	titles := make([]string, len(r.stack))
	for i, s := range r.stack {
		titles[i] = s.Title()
	}
	return strings.Join(titles, sep)
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}
	next, cmd := r.Active().Update(msg)
	r.stack[r.top()] = next
	return cmd
}

// Broadcast hands msg to every open screen, root first. Reloaded data goes
// out this way so screens under the active one are not left stale.
func (r *Router) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, s := range r.stack {
		next, cmd := s.Update(msg)
		r.stack[i] = next
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View renders the active screen into width x height.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
