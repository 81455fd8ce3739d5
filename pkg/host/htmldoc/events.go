package htmldoc

import (
	"fmt"

	"github.com/elmordo/OwlInWeb/pkg/host"
)

// Subscribe implements host.Document.
func (d *Document) Subscribe(n host.Node, event string, h host.Handler) error {
	if d.KindOf(n) == host.KindUnknown {
		return fmt.Errorf("htmldoc: subscribe: unrecognized node handle")
	}
	if event == "" {
		return fmt.Errorf("htmldoc: subscribe: empty event type")
	}
	if h == nil {
		return fmt.Errorf("htmldoc: subscribe: nil handler")
	}
	byEvent := d.subs[n]
	if byEvent == nil {
		byEvent = make(map[string][]host.Handler)
		d.subs[n] = byEvent
	}
	byEvent[event] = append(byEvent[event], h)
	return nil
}

// Dispatch delivers an event to every handler subscribed for it on the
// node, in subscription order. Backends embedded in an interactive context
// call this when the platform fires; tests use it to simulate events.
func (d *Document) Dispatch(n host.Node, event string) {
	for _, h := range d.subs[n][event] {
		h(host.Event{Type: event, Target: n})
	}
}
