package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"nestlist/internal/eventbus"
)

// Widget is a scrollable list of Items with expandable children. It owns
// the selection State, maps key messages to navigation operations and
// renders the visible slice of the list, keeping the selected entry in
// view. Selection and expansion changes are published on the event bus
// when one is provided.
type Widget struct {
	state  *State
	items  []Item
	axis   ScrollAxis
	keys   KeyMap
	bus    eventbus.EventBus
	width  int
	height int
}

// NewWidget creates an empty widget scrolling along axis. The bus may be
// nil, in which case no events are published.
func NewWidget(axis ScrollAxis, bus eventbus.EventBus) *Widget {
	return &Widget{
		state: NewState(),
		axis:  axis,
		keys:  DefaultKeyMap(),
		bus:   bus,
	}
}

// State exposes the widget's selection state.
func (w *Widget) State() *State {
	return w.state
}

// Axis returns the scroll axis.
func (w *Widget) Axis() ScrollAxis {
	return w.axis
}

// SetKeyMap replaces the widget's key bindings.
func (w *Widget) SetKeyMap(keys KeyMap) {
	w.keys = keys
}

// KeyMap returns the widget's key bindings.
func (w *Widget) KeyMap() KeyMap {
	return w.keys
}

// SetSize sets the viewport size in cells.
func (w *Widget) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// SetItems replaces the list contents and syncs the per-entry child
// counts into the state machine.
func (w *Widget) SetItems(items []Item) {
	w.items = items
	w.syncCounts()
	w.publish(eventbus.EntriesReloadedEvent{Count: len(items)})
}

// Items returns the current list contents.
func (w *Widget) Items() []Item {
	return w.items
}

// syncCounts feeds the current child counts to the state machine so
// navigation indices stay consistent with the actual contents.
func (w *Widget) syncCounts() {
	counts := make([]int, len(w.items))
	for i, item := range w.items {
		counts[i] = item.ChildCount()
	}
	w.state.SetChildCounts(counts)
}

// Update handles key and resize messages.
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height

	case tea.KeyMsg:
		// Contents may have changed since the last frame.
		w.syncCounts()

		before, hadBefore := w.state.Selected()

		switch {
		case key.Matches(msg, w.keys.Next):
			w.state.Next()
		case key.Matches(msg, w.keys.Previous):
			w.state.Previous()
		case key.Matches(msg, w.keys.Expand):
			w.state.ExpandSelected()
			if sel, ok := w.state.Selected(); ok {
				w.publish(eventbus.ExpansionChangedEvent{Index: sel.Main, Expanded: true})
			}
		case key.Matches(msg, w.keys.Collapse):
			w.state.CollapseSelected()
			if sel, ok := w.state.Selected(); ok {
				w.publish(eventbus.ExpansionChangedEvent{Index: sel.Main, Expanded: false})
			}
		case key.Matches(msg, w.keys.ExpandAll):
			w.state.ExpandAll()
			w.publish(eventbus.ExpansionChangedEvent{Index: -1, Expanded: true})
		case key.Matches(msg, w.keys.CollapseAll):
			w.state.CollapseAll()
			w.publish(eventbus.ExpansionChangedEvent{Index: -1, Expanded: false})
		case key.Matches(msg, w.keys.Clear):
			w.state.ClearSelection()
		}

		after, hasAfter := w.state.Selected()
		if hadBefore != hasAfter || before != after {
			w.publish(eventbus.SelectionChangedEvent{
				Main:         after.Main,
				Child:        after.Child,
				HasChild:     after.HasChild,
				HasSelection: hasAfter,
			})
		}
	}
	return nil
}

// View renders the visible portion of the list. Item sizes come from the
// pre-render contract; the derived viewport offset and first-item
// truncation are written back into the state for the next frame.
func (w *Widget) View() string {
	avail := w.height
	if w.axis == Horizontal {
		avail = w.width
	}
	if len(w.items) == 0 || avail <= 0 {
		return ""
	}

	ctxs := make([]ItemContext, len(w.items))
	sizes := make([]int, len(w.items))
	for i, item := range w.items {
		ctxs[i] = w.contextFor(i)
		sizes[i] = item.MainSize(ctxs[i])
	}

	w.layout(sizes, avail)

	var blocks []string
	used := 0
	for i := w.state.view.offset; i < len(w.items) && used < avail; i++ {
		view := w.items[i].Render(ctxs[i])
		size := sizes[i]
		if i == w.state.view.offset && w.state.view.firstTruncated > 0 {
			view = w.truncateLeading(view, w.state.view.firstTruncated)
			size -= w.state.view.firstTruncated
		}
		if used+size > avail {
			view = w.truncateTrailing(view, used+size-avail)
			size = avail - used
		}
		if size <= 0 {
			continue
		}
		blocks = append(blocks, view)
		used += size
	}

	if w.axis == Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// contextFor builds the pre-render context for the item at index i.
func (w *Widget) contextFor(i int) ItemContext {
	cross := w.width
	if w.axis == Horizontal {
		cross = w.height
	}
	ctx := ItemContext{
		Selected:  w.state.IsSelected(i),
		Expanded:  w.state.IsExpanded(i),
		CrossSize: cross,
		Axis:      w.axis,
		Index:     i,
	}
	if child, ok := w.state.SelectedChild(i); ok {
		ctx.SelectedChild = child
		ctx.HasSelectedChild = true
	}
	return ctx
}

// layout advances the viewport offset until the selected entry fits into
// the available main-axis space. When the entry is larger than the
// viewport its leading cells are truncated so its end stays visible.
func (w *Widget) layout(sizes []int, avail int) {
	sel, ok := w.state.Selected()
	if !ok {
		w.state.view.firstTruncated = 0
		if w.state.view.offset >= len(sizes) {
			w.state.view.offset = 0
		}
		return
	}

	target := sel.Main
	if target < 0 {
		target = 0
	}
	if target >= len(sizes) {
		target = len(sizes) - 1
	}

	offset := w.state.view.offset
	if offset > target {
		offset = target
	}
	if offset < 0 {
		offset = 0
	}

	total := 0
	for i := offset; i <= target; i++ {
		total += sizes[i]
	}
	for total > avail && offset < target {
		total -= sizes[offset]
		offset++
	}

	trunc := 0
	if total > avail {
		trunc = total - avail
	}

	w.state.view.offset = offset
	w.state.view.firstTruncated = trunc
}

// truncateLeading drops the first n rows (vertical) or columns
// (horizontal) of a rendered block.
func (w *Widget) truncateLeading(view string, n int) string {
	if w.axis == Horizontal {
		return cutColumns(view, n, -1)
	}
	lines := strings.Split(view, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[n:], "\n")
}

// truncateTrailing drops the last n rows or columns of a rendered block.
func (w *Widget) truncateTrailing(view string, n int) string {
	if w.axis == Horizontal {
		width := lipgloss.Width(view)
		return cutColumns(view, 0, width-n)
	}
	lines := strings.Split(view, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[:len(lines)-n], "\n")
}

// cutColumns keeps columns [left, right) of every line in a block,
// preserving ANSI styling. right < 0 keeps through the end of the line.
func cutColumns(view string, left, right int) string {
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		r := right
		if r < 0 {
			r = ansi.StringWidth(line)
		}
		lines[i] = ansi.Cut(line, left, r)
	}
	return strings.Join(lines, "\n")
}

// publish sends an event when a bus is attached.
func (w *Widget) publish(event eventbus.DomainEvent) {
	if w.bus != nil {
		w.bus.Publish(event)
	}
}
