package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/kinetic/internal/ui/ripple"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children  []Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		align:         lipgloss.Left,
	}
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack. Children are top aligned.
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal).WithAlign(lipgloss.Top)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	view, _ := s.Layout(ctx)
	return view
}

// Layout renders the stack and reports where each non-empty child landed,
// relative to the stack origin. Rects are listed in child order; nil and
// empty children get an empty rect.
func (s *Stack) Layout(ctx RenderContext) (string, []ripple.Rect) {
	rects := make([]ripple.Rect, len(s.children))
	views := make([]string, 0, len(s.children))

	offset := 0
	for i, child := range s.children {
		if child == nil {
			continue
		}
		var view string
		if contextual, ok := child.(ContextualRenderable); ok {
			view = contextual.ViewWithContext(ctx)
		} else {
			view = child.View()
		}
		if view == "" {
			continue
		}

		if len(views) > 0 {
			offset += max(s.gap, 0)
		}
		w, h := lipgloss.Size(view)
		if s.direction == DirectionHorizontal {
			rects[i] = ripple.Rect{X: offset, Width: w, Height: h}
			offset += w
		} else {
			rects[i] = ripple.Rect{Y: offset, Width: w, Height: h}
			offset += h
		}
		views = append(views, view)
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render(""), rects
	}
	if s.gap <= 0 {
		if s.direction == DirectionHorizontal {
			return style.Render(lipgloss.JoinHorizontal(s.align, views...)), rects
		}
		return style.Render(lipgloss.JoinVertical(s.align, views...)), rects
	}
	if s.direction == DirectionHorizontal {
		return style.Render(s.join(views, strings.Repeat(" ", s.gap), lipgloss.JoinHorizontal)), rects
	}
	// A blank spacer is already one row tall.
	return style.Render(s.join(views, strings.Repeat("\n", s.gap-1), lipgloss.JoinVertical)), rects
}

// join interleaves views with spacer. The gap must be positive.
func (s *Stack) join(views []string, spacer string, fn func(lipgloss.Position, ...string) string) string {
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return fn(s.align, parts...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross axis alignment.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}
