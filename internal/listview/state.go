package listview

// Selection identifies the selected entry in a list: the index of a main
// entry and, when HasChild is set, the index of one of its children.
type Selection struct {
	Main     int
	Child    int
	HasChild bool
}

// State tracks selection, expansion and viewport bookkeeping for a list
// whose main entries may carry collapsible children. It knows nothing
// about entry content, only about per-entry child counts, which the
// owning widget supplies via SetChildCounts whenever the list changes.
//
// All operations are total: out-of-range selections are tolerated and
// converge back to valid indices on the next navigation call instead of
// being rejected.
type State struct {
	selected    *Selection
	childCounts []int
	expanded    []int
	wrapAround  bool
	view        viewState
}

// viewState records which main entry is rendered first and how many
// leading rows/columns of it are scrolled off-screen.
type viewState struct {
	offset         int
	firstTruncated int
}

// NewState creates an empty state with wrap-around enabled.
func NewState() *State {
	return &State{wrapAround: true}
}

// SetWrapAround controls whether Next on the last entry wraps to the
// first and Previous on the first wraps to the last.
func (s *State) SetWrapAround(enabled bool) {
	s.wrapAround = enabled
}

// Selected returns the current selection, if any.
func (s *State) Selected() (Selection, bool) {
	if s.selected == nil {
		return Selection{}, false
	}
	return *s.selected, true
}

// Select selects the main entry at index, dropping any child selection.
// The expanded set is left untouched.
func (s *State) Select(index int) {
	s.selected = &Selection{Main: index}
}

// SelectEntry sets the full selection tuple directly. It is the
// low-level setter behind Next and Previous.
func (s *State) SelectEntry(sel Selection) {
	cp := sel
	s.selected = &cp
}

// ClearSelection removes the selection and resets the viewport offset.
func (s *State) ClearSelection() {
	s.selected = nil
	s.view.offset = 0
}

// CollapseAll empties the expanded set. An active child selection falls
// back to its parent main entry; which main entry is selected does not
// change.
func (s *State) CollapseAll() {
	s.expanded = s.expanded[:0]
	if s.selected != nil {
		s.selected.Child = 0
		s.selected.HasChild = false
	}
}

// CollapseSelected removes the selected main entry from the expanded set
// and drops any child selection. No-op when nothing is selected.
func (s *State) CollapseSelected() {
	if s.selected == nil {
		return
	}
	kept := s.expanded[:0]
	for _, i := range s.expanded {
		if i != s.selected.Main {
			kept = append(kept, i)
		}
	}
	s.expanded = kept
	s.selected.Child = 0
	s.selected.HasChild = false
}

// ExpandAll marks every main entry as expanded.
func (s *State) ExpandAll() {
	s.expanded = s.expanded[:0]
	for i := range s.childCounts {
		s.expanded = append(s.expanded, i)
	}
}

// ExpandSelected adds the selected main entry to the expanded set.
// No-op when nothing is selected or it is already expanded.
func (s *State) ExpandSelected() {
	if s.selected == nil {
		return
	}
	if !s.IsExpanded(s.selected.Main) {
		s.expanded = append(s.expanded, s.selected.Main)
	}
}

// SelectedChild returns the selected child index if index is the
// selected main entry and one of its children is selected.
func (s *State) SelectedChild(index int) (int, bool) {
	if s.selected == nil || s.selected.Main != index || !s.selected.HasChild {
		return 0, false
	}
	return s.selected.Child, true
}

// IsSelected reports whether index is the selected main entry.
func (s *State) IsSelected(index int) bool {
	return s.selected != nil && s.selected.Main == index
}

// IsExpanded reports whether the main entry at index is expanded.
func (s *State) IsExpanded(index int) bool {
	for _, x := range s.expanded {
		if x == index {
			return true
		}
	}
	return false
}

// Next advances the selection by one step. Stepping into an expanded
// entry visits its children before moving on to the following main
// entry; past the last entry the selection wraps to the first unless
// wrap-around is disabled.
func (s *State) Next() {
	if len(s.childCounts) == 0 {
		return
	}
	if s.selected == nil {
		s.SelectEntry(Selection{})
		return
	}

	sel := *s.selected
	var next Selection
	if sel.Main >= 0 && sel.Main < len(s.childCounts) && s.IsExpanded(sel.Main) {
		count := s.childCounts[sel.Main]
		switch {
		case !sel.HasChild:
			next = Selection{Main: sel.Main, Child: 0, HasChild: true}
		case sel.Child >= count-1:
			// Children exhausted, move on to the next main entry.
			next = s.nextMain(sel.Main)
		default:
			next = Selection{Main: sel.Main, Child: sel.Child + 1, HasChild: true}
		}
	} else {
		next = s.nextMain(sel.Main)
	}
	s.SelectEntry(next)
}

// Previous moves the selection one step back. Leaving a main entry
// backwards lands on the previous entry's last child when that entry is
// expanded, mirroring how Next enters an expanded entry at child 0.
func (s *State) Previous() {
	if len(s.childCounts) == 0 {
		return
	}
	if s.selected == nil {
		s.SelectEntry(Selection{})
		return
	}

	sel := *s.selected
	var prev Selection
	if sel.Main >= 0 && sel.Main < len(s.childCounts) && sel.HasChild {
		if sel.Child == 0 {
			prev = Selection{Main: sel.Main}
		} else {
			prev = Selection{Main: sel.Main, Child: sel.Child - 1, HasChild: true}
		}
	} else {
		prev = s.prevMain(sel.Main)
	}
	s.SelectEntry(prev)
}

// nextMain advances past index to the following main entry, honoring the
// wrap-around flag at the end of the list.
func (s *State) nextMain(index int) Selection {
	if index >= len(s.childCounts)-1 {
		if s.wrapAround {
			return Selection{}
		}
		return Selection{Main: index}
	}
	return Selection{Main: index + 1}
}

// prevMain moves back past index to the preceding main entry. When the
// landing entry is expanded and has children, its last child is selected
// instead of the entry itself.
func (s *State) prevMain(index int) Selection {
	if index == 0 && !s.wrapAround {
		return Selection{Main: index}
	}
	prevIndex := index - 1
	if index == 0 {
		prevIndex = len(s.childCounts) - 1
	}
	if !s.IsExpanded(prevIndex) {
		return Selection{Main: prevIndex}
	}
	count := 0
	if prevIndex >= 0 && prevIndex < len(s.childCounts) {
		count = s.childCounts[prevIndex]
	}
	if count == 0 {
		return Selection{Main: prevIndex}
	}
	return Selection{Main: prevIndex, Child: count - 1, HasChild: true}
}

// SetChildCounts replaces the per-entry child count table and prunes
// expanded entries that fell off the end of the list. A selection whose
// main index is now out of range is left alone; callers that care must
// re-select, otherwise the next navigation call converges on its own.
func (s *State) SetChildCounts(counts []int) {
	kept := s.expanded[:0]
	for _, i := range s.expanded {
		if i < len(counts) {
			kept = append(kept, i)
		}
	}
	s.expanded = kept
	s.childCounts = append(s.childCounts[:0], counts...)
}

// ChildCount returns the recorded child count for the main entry at
// index, or 0 if index is out of range.
func (s *State) ChildCount(index int) int {
	if index < 0 || index >= len(s.childCounts) {
		return 0
	}
	return s.childCounts[index]
}

// Count returns the number of main entries last synced.
func (s *State) Count() int {
	return len(s.childCounts)
}

// Offset returns the index of the first main entry in the viewport.
func (s *State) Offset() int {
	return s.view.offset
}

// FirstTruncated returns how many leading rows/columns of the first
// visible entry are scrolled off-screen.
func (s *State) FirstTruncated() int {
	return s.view.firstTruncated
}
