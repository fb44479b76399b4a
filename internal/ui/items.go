package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nestlist/internal/listview"
)

// dayItemWidth is the column width of a day card in a horizontal list.
const dayItemWidth = 24

var (
	dayStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	selectedDayStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	taskStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedTaskStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
)

// DayItem is a weekly-planner entry: a day whose tasks show up as
// collapsible children.
type DayItem struct {
	Title string
	Tasks []string
}

// ChildCount implements listview.Item.
func (d DayItem) ChildCount() int {
	return len(d.Tasks)
}

// MainSize implements listview.Item: one row for the title plus one per
// task while expanded, or a fixed card width in a horizontal list.
func (d DayItem) MainSize(ctx listview.ItemContext) int {
	if ctx.Axis == listview.Horizontal {
		return dayItemWidth
	}
	if ctx.Expanded {
		return 1 + len(d.Tasks)
	}
	return 1
}

// Render implements listview.Item.
func (d DayItem) Render(ctx listview.ItemContext) string {
	width := ctx.CrossSize
	if ctx.Axis == listview.Horizontal {
		width = dayItemWidth
	}
	if width <= 0 {
		width = dayItemWidth
	}

	title := dayStyle
	if ctx.Selected && !ctx.HasSelectedChild {
		title = selectedDayStyle
	}
	lines := []string{title.Width(width).Render(d.Title)}

	if ctx.Expanded || ctx.Axis == listview.Horizontal {
		for j, task := range d.Tasks {
			style := taskStyle
			if ctx.HasSelectedChild && ctx.SelectedChild == j {
				style = selectedTaskStyle
			}
			lines = append(lines, style.Width(width).Render("  "+task))
		}
	}

	return strings.Join(lines, "\n")
}

// ColorItem is a plain colored block for the horizontal strip.
type ColorItem struct {
	Name  string
	Color lipgloss.Color
}

// ChildCount implements listview.Item; color blocks are leaves.
func (c ColorItem) ChildCount() int {
	return 0
}

// MainSize implements listview.Item; a selected block grows to make the
// selection visible without relying on color support.
func (c ColorItem) MainSize(ctx listview.ItemContext) int {
	if ctx.Axis == listview.Horizontal {
		if ctx.Selected {
			return 16
		}
		return 12
	}
	if ctx.Selected {
		return 3
	}
	return 2
}

// Render implements listview.Item.
func (c ColorItem) Render(ctx listview.ItemContext) string {
	mainSize := c.MainSize(ctx)
	width, height := mainSize, ctx.CrossSize
	if ctx.Axis == listview.Vertical {
		width, height = ctx.CrossSize, mainSize
	}
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}

	style := lipgloss.NewStyle().
		Background(c.Color).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	label := ""
	if ctx.Selected {
		label = c.Name
	}
	return style.Render(label)
}

// demoDays returns the weekly planner contents.
func demoDays() []listview.Item {
	return []listview.Item{
		DayItem{Title: "Monday", Tasks: []string{
			"Exercise for 30 minutes",
			"Work on the project for 2 hours",
			"Read a book for 1 hour",
			"Cook dinner",
		}},
		DayItem{Title: "Tuesday", Tasks: []string{
			"Attend a team meeting at 10 AM",
			"Reply to emails",
			"Prepare lunch",
		}},
		DayItem{Title: "Wednesday", Tasks: []string{
			"Update work tasks",
			"Conduct code review",
			"Attend a training",
		}},
		DayItem{Title: "Thursday", Tasks: []string{
			"Brainstorm for an upcoming project",
			"Document ideas and refine tasks",
		}},
		DayItem{Title: "Friday", Tasks: []string{
			"Have a one-on-one with a team lead",
			"Attend demo talk",
			"Go running for 1 hour",
		}},
		DayItem{Title: "Saturday", Tasks: []string{
			"Work on a personal coding project for 2 hours",
			"Read a chapter from a book",
			"Go for a short walk",
		}},
		DayItem{Title: "Sunday", Tasks: []string{
			"Plan and outline goals for the upcoming week",
			"Attend an online workshop",
			"Go to dinner with friends",
			"Watch a movie",
		}},
	}
}

// demoColors returns the color strip contents.
func demoColors() []listview.Item {
	return []listview.Item{
		ColorItem{Name: "red", Color: lipgloss.Color("1")},
		ColorItem{Name: "blue", Color: lipgloss.Color("4")},
		ColorItem{Name: "yellow", Color: lipgloss.Color("3")},
		ColorItem{Name: "magenta", Color: lipgloss.Color("5")},
		ColorItem{Name: "green", Color: lipgloss.Color("2")},
		ColorItem{Name: "cyan", Color: lipgloss.Color("6")},
		ColorItem{Name: "white", Color: lipgloss.Color("7")},
		ColorItem{Name: "orange", Color: lipgloss.Color("214")},
		ColorItem{Name: "pink", Color: lipgloss.Color("212")},
	}
}
