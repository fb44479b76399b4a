package listview

// ScrollAxis is the axis a list scrolls along.
type ScrollAxis int

const (
	Vertical ScrollAxis = iota
	Horizontal
)

func (a ScrollAxis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ItemContext is the read-only context handed to an item just before it
// is measured and drawn. It carries the selection and expansion state
// relevant to this item so the item can restyle itself and lay out its
// children.
type ItemContext struct {
	// Selected reports whether this item is the selected main entry.
	Selected bool

	// SelectedChild is the selected child index when HasSelectedChild
	// is set. It is only ever set together with Selected.
	SelectedChild    int
	HasSelectedChild bool

	// Expanded reports whether the item's children are visible.
	Expanded bool

	// CrossSize is the available size across the scroll axis: columns
	// for a vertical list, rows for a horizontal one.
	CrossSize int

	// Axis is the list's scroll axis.
	Axis ScrollAxis

	// Index is the item's position among the main entries.
	Index int
}

// Item is implemented by anything displayed as a main entry in a Widget.
// Both methods are pure queries over the item and the given context;
// MainSize must agree with what Render produces.
type Item interface {
	// ChildCount reports how many collapsible children the item has.
	ChildCount() int

	// MainSize reports the rows (vertical list) or columns (horizontal
	// list) the item occupies when rendered with the given context,
	// including its visible children.
	MainSize(ctx ItemContext) int

	// Render draws the item as a block of MainSize(ctx) rows/columns.
	Render(ctx ItemContext) string
}
