package listview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"nestlist/internal/eventbus"
)

// stubItem renders a fixed-size block of repeated marker runes.
type stubItem struct {
	children int
	size     int
	marker   string
}

func (s stubItem) ChildCount() int {
	return s.children
}

func (s stubItem) MainSize(ctx ItemContext) int {
	if ctx.Expanded {
		return s.size + s.children
	}
	return s.size
}

func (s stubItem) Render(ctx ItemContext) string {
	size := s.MainSize(ctx)
	if ctx.Axis == Horizontal {
		return strings.Repeat(s.marker, size)
	}
	lines := make([]string, size)
	for i := range lines {
		lines[i] = s.marker
	}
	return strings.Join(lines, "\n")
}

func stubItems(n, size int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = stubItem{size: size, marker: string(rune('a' + i))}
	}
	return items
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestWidgetSetItemsSyncsChildCounts(t *testing.T) {
	w := NewWidget(Vertical, nil)
	w.SetItems([]Item{
		stubItem{children: 2, size: 1},
		stubItem{children: 0, size: 1},
		stubItem{children: 1, size: 1},
	})

	require.Equal(t, 3, w.State().Count())
	require.Equal(t, 2, w.State().ChildCount(0))
	require.Equal(t, 0, w.State().ChildCount(1))
	require.Equal(t, 1, w.State().ChildCount(2))
}

func TestWidgetKeyNavigation(t *testing.T) {
	w := NewWidget(Vertical, nil)
	w.SetSize(40, 10)
	w.SetItems([]Item{
		stubItem{children: 2, size: 1, marker: "a"},
		stubItem{size: 1, marker: "b"},
	})

	w.Update(keyRunes('j'))
	sel, ok := w.State().Selected()
	require.True(t, ok)
	require.Equal(t, Selection{Main: 0}, sel)

	w.Update(keyRunes('l')) // expand
	require.True(t, w.State().IsExpanded(0))

	w.Update(keyRunes('j'))
	sel, _ = w.State().Selected()
	require.Equal(t, Selection{Main: 0, Child: 0, HasChild: true}, sel)

	w.Update(keyRunes('h')) // collapse drops the child selection
	require.False(t, w.State().IsExpanded(0))
	sel, _ = w.State().Selected()
	require.Equal(t, Selection{Main: 0}, sel)

	w.Update(keyRunes('k'))
	sel, _ = w.State().Selected()
	require.Equal(t, Selection{Main: 1}, sel, "previous from first entry wraps")

	w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, ok = w.State().Selected()
	require.False(t, ok)
}

func TestWidgetExpandAllCollapseAllKeys(t *testing.T) {
	w := NewWidget(Vertical, nil)
	w.SetItems([]Item{
		stubItem{children: 1, size: 1, marker: "a"},
		stubItem{children: 1, size: 1, marker: "b"},
	})

	w.Update(keyRunes('E'))
	require.True(t, w.State().IsExpanded(0))
	require.True(t, w.State().IsExpanded(1))

	w.Update(keyRunes('C'))
	require.False(t, w.State().IsExpanded(0))
	require.False(t, w.State().IsExpanded(1))
}

func TestWidgetViewScrollsSelectionIntoView(t *testing.T) {
	w := NewWidget(Vertical, nil)
	w.SetSize(10, 6)
	w.SetItems(stubItems(10, 2))

	w.State().Select(5)
	view := w.View()

	// Items 3..5 fill the six rows exactly.
	require.Equal(t, 3, w.State().Offset())
	require.Equal(t, 0, w.State().FirstTruncated())
	require.Equal(t, 6, strings.Count(view, "\n")+1)
	require.Contains(t, view, "f")
	require.NotContains(t, view, "c")
}

func TestWidgetViewTruncatesOversizedItem(t *testing.T) {
	w := NewWidget(Vertical, nil)
	w.SetSize(10, 4)
	w.SetItems(stubItems(1, 10))

	w.State().Select(0)
	view := w.View()

	require.Equal(t, 0, w.State().Offset())
	require.Equal(t, 6, w.State().FirstTruncated())
	require.Equal(t, 4, strings.Count(view, "\n")+1)
}

func TestWidgetViewKeepsOffsetWhileScrollingUp(t *testing.T) {
	w := NewWidget(Vertical, nil)
	w.SetSize(10, 6)
	w.SetItems(stubItems(10, 2))

	w.State().Select(5)
	w.View()
	require.Equal(t, 3, w.State().Offset())

	// Selecting above the viewport pulls the offset up to it.
	w.State().Select(1)
	w.View()
	require.Equal(t, 1, w.State().Offset())
	require.Equal(t, 0, w.State().FirstTruncated())
}

func TestWidgetViewHorizontal(t *testing.T) {
	w := NewWidget(Horizontal, nil)
	w.SetSize(8, 1)
	w.SetItems(stubItems(3, 4))

	w.State().Select(2)
	view := w.View()

	require.Equal(t, 1, w.State().Offset())
	require.Equal(t, "bbbbcccc", view)
}

func TestWidgetViewEmpty(t *testing.T) {
	w := NewWidget(Vertical, nil)
	w.SetSize(10, 5)
	require.Equal(t, "", w.View())
}

func TestWidgetClearSelectionResetsViewport(t *testing.T) {
	w := NewWidget(Vertical, nil)
	w.SetSize(10, 4)
	w.SetItems(stubItems(10, 2))

	w.State().Select(9)
	w.View()
	require.Greater(t, w.State().Offset(), 0)

	w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, 0, w.State().Offset())
}

func TestWidgetContextCarriesSelectionState(t *testing.T) {
	w := NewWidget(Vertical, nil)
	w.SetSize(40, 10)
	w.SetItems([]Item{stubItem{children: 2, size: 1, marker: "a"}})

	w.State().SelectEntry(Selection{Main: 0, Child: 1, HasChild: true})
	w.State().ExpandAll()

	ctx := w.contextFor(0)
	require.True(t, ctx.Selected)
	require.True(t, ctx.Expanded)
	require.True(t, ctx.HasSelectedChild)
	require.Equal(t, 1, ctx.SelectedChild)
	require.Equal(t, 40, ctx.CrossSize)
	require.Equal(t, Vertical, ctx.Axis)
}

func TestWidgetPublishesSelectionEvents(t *testing.T) {
	bus := eventbus.New(zerolog.Nop())
	defer bus.Close()

	received := make(chan eventbus.SelectionChangedEvent, 1)
	unsubscribe := bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			received <- event
		}
	})
	defer unsubscribe()

	w := NewWidget(Vertical, bus)
	w.SetItems(stubItems(3, 1))
	w.Update(keyRunes('j'))

	select {
	case event := <-received:
		require.True(t, event.HasSelection)
		require.Equal(t, 0, event.Main)
		require.False(t, event.HasChild)
	case <-time.After(time.Second):
		t.Fatal("expected a selection changed event")
	}
}
