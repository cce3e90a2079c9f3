package assets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/groveray/engine/native"
)

// MaxAutomationEvents is the capacity of every loaded event list.
const MaxAutomationEvents = 16384

type eventFile struct {
	Version int         `yaml:"version"`
	Events  []eventLine `yaml:"events"`
}

type eventLine struct {
	Frame  uint32   `yaml:"frame"`
	Type   uint32   `yaml:"type"`
	Params [4]int32 `yaml:"params,flow"`
}

// LoadEvents reads an automation event list. An empty path yields an empty list.
func LoadEvents(path string) (native.AutomationEventList, error) {
	list := native.AutomationEventList{Capacity: MaxAutomationEvents, Events: []native.AutomationEvent{}}
	if path == "" {
		return list, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return native.AutomationEventList{}, fmt.Errorf("read %q: %w", path, err)
	}
	var file eventFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return native.AutomationEventList{}, fmt.Errorf("parse %q: %w", path, err)
	}
	if len(file.Events) > MaxAutomationEvents {
		return native.AutomationEventList{}, fmt.Errorf("%q: %d events exceed capacity %d", path, len(file.Events), MaxAutomationEvents)
	}
	for _, e := range file.Events {
		list.Events = append(list.Events, native.AutomationEvent(e))
	}
	return list, nil
}

// SaveEvents writes list in the format LoadEvents reads.
func SaveEvents(list native.AutomationEventList, path string) error {
	file := eventFile{Version: 1, Events: make([]eventLine, len(list.Events))}
	for i, e := range list.Events {
		file.Events[i] = eventLine(e)
	}
	b, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
