package profiler

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"sync/atomic"
)

var ErrNoEvents = errors.New("profiler: no events recorded")

type event struct {
	atNS  int64
	frame int
	open  bool
}

// ring keeps the newest cap events in write order.
type ring struct {
	cap   uint64
	write atomic.Uint64
	evs   []event
}

func newRing(capacity int) *ring {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	return &ring{cap: uint64(capacity), evs: make([]event, capacity)}
}

func (r *ring) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

func (r *ring) snapshot() []event {
	n := r.write.Load()
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

type interner struct {
	mu    sync.Mutex
	names []string
	index map[string]int
}

func (in *interner) id(name string) int {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[name]; ok {
		return id
	}
	if in.index == nil {
		in.index = make(map[string]int)
	}
	id := len(in.names)
	in.index[name] = id
	in.names = append(in.names, name)
	return id
}

func (in *interner) all() []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]string(nil), in.names...)
}

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since first event
	Frame int    `json:"frame"`
}

// encode builds an evented speedscope profile. Closes that do not match the
// innermost open span are dropped and spans still open at the end are closed
// at the last timestamp.
func encode(evs []event, names []string) (ssFile, error) {
	if len(evs) == 0 {
		return ssFile{}, ErrNoEvents
	}
	base := evs[0].atNS
	out := make([]ssEvent, 0, len(evs))
	stack := make([]int, 0, 16)
	last := int64(0)
	for _, e := range evs {
		at := max((e.atNS-base)/1000, last)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}

	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}
	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "groveray frames",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "groveray-profiler",
		Name:     "groveray capture",
	}, nil
}

func writeFile(doc ssFile, path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
