package kir

// EventType identifies which interaction an event binding listens for.
type EventType uint8

const (
	EventClick EventType = iota
	EventHover
	EventFocus
	EventBlur
	EventTextChange
	EventKey
	EventScroll
	EventTimer
	EventCustom
)

var eventNames = [...]string{
	EventClick:      "click",
	EventHover:      "hover",
	EventFocus:      "focus",
	EventBlur:       "blur",
	EventTextChange: "text_change",
	EventKey:        "key",
	EventScroll:     "scroll",
	EventTimer:      "timer",
	EventCustom:     "custom",
}

// String returns the wire name of the event type.
func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "click"
}

// ParseEventType maps a wire name back to an EventType. Unknown names decode
// as Click.
func ParseEventType(name string) EventType {
	for t, n := range eventNames {
		if n == name {
			return EventType(t)
		}
	}
	return EventClick
}

// Event attaches a handler to a component. Handler names a logic function;
// Data carries event-specific payload (key filter, timer interval) as an
// opaque string.
type Event struct {
	Type    EventType
	Handler string
	Data    string
}
