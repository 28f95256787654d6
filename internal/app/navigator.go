package app

import (
	"log/slog"

	"github.com/Veraticus/acefi/internal/common"
	"github.com/Veraticus/acefi/internal/model"
)

// Navigator is a stack of routes. The top of the stack is the visible screen.
type Navigator struct {
	logger   *slog.Logger
	onChange func(model.Route)
	stack    []model.Route
}

// NewNavigator creates a navigator showing start.
func NewNavigator(start model.Route, logger *slog.Logger) *Navigator {
	return &Navigator{
		logger: common.ComponentLogger(logger, "navigator"),
		stack:  []model.Route{start},
	}
}

// OnChange registers fn to be called after every route change.
func (n *Navigator) OnChange(fn func(model.Route)) {
	n.onChange = fn
}

// Navigate pushes r.
func (n *Navigator) Navigate(r model.Route) {
	n.stack = append(n.stack, r)
	n.changed("navigate")
}

// Replace swaps the current route for r.
func (n *Navigator) Replace(r model.Route) {
	n.stack[len(n.stack)-1] = r
	n.changed("replace")
}

// Reset drops the history and shows r.
func (n *Navigator) Reset(r model.Route) {
	n.stack = []model.Route{r}
	n.changed("reset")
}

// Back pops the current route. The root route is never popped.
func (n *Navigator) Back() bool {
	if len(n.stack) < 2 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	n.changed("back")
	return true
}

// Current returns the visible route.
func (n *Navigator) Current() model.Route {
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of routes on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

func (n *Navigator) changed(action string) {
	current := n.Current()
	n.logger.Debug("Route changed", "action", action, "route", current.String(), "depth", len(n.stack))
	if n.onChange != nil {
		n.onChange(current)
	}
}
