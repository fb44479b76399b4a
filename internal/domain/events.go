package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventExpansionChanged EventType = "ExpansionChanged"
	EventEntriesReloaded  EventType = "EntriesReloaded"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when the list selection moves.
// Child is only meaningful when HasChild is set; HasSelection is false
// when the selection was cleared.
type SelectionChangedEvent struct {
	Main         int
	Child        int
	HasChild     bool
	HasSelection bool
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ExpansionChangedEvent is emitted when an entry is expanded or
// collapsed. Index is -1 for expand-all/collapse-all.
type ExpansionChangedEvent struct {
	Index    int
	Expanded bool
}

func (e ExpansionChangedEvent) Type() EventType { return EventExpansionChanged }

// EntriesReloadedEvent is emitted after the widget received a new set of
// entries and re-synced its child counts.
type EntriesReloadedEvent struct {
	Count int
}

func (e EntriesReloadedEvent) Type() EventType { return EventEntriesReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	WrapAround bool
	Axis       string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
