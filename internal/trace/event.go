package trace

import "fmt"

// Event records one executed tick operation.
//
// Tick and Other hold operands in tick display form. Result holds the
// operation's result as text: a tick for arithmetic, a decimal count for
// diff, -1/0/1 for compare. Fatal is "overflow" or "underflow" when the
// operation left the tick range, in which case Result is empty.
type Event struct {
	Seq    int64   `json:"seq"`
	Op     string  `json:"op"`
	Tick   string  `json:"tick"`
	Other  string  `json:"other,omitempty"`
	Delta  *uint32 `json:"delta,omitempty"`
	Result string  `json:"result,omitempty"`
	Fatal  string  `json:"fatal,omitempty"`
	Clock  string  `json:"clock"`
}

func (e Event) canonicalMap() map[string]any {
	m := map[string]any{
		"seq":   e.Seq,
		"op":    e.Op,
		"tick":  e.Tick,
		"clock": e.Clock,
	}
	if e.Other != "" {
		m["other"] = e.Other
	}
	if e.Delta != nil {
		m["delta"] = *e.Delta
	}
	if e.Result != "" {
		m["result"] = e.Result
	}
	if e.Fatal != "" {
		m["fatal"] = e.Fatal
	}
	return m
}

// Snapshot is the complete trace of one run.
type Snapshot struct {
	Scenario string  `json:"scenario"`
	Token    string  `json:"token,omitempty"`
	Start    string  `json:"start"`
	Events   []Event `json:"events"`
}

// Canonical returns the snapshot as canonical JSON.
func (s *Snapshot) Canonical() ([]byte, error) {
	m := map[string]any{
		"scenario": s.Scenario,
		"start":    s.Start,
		"events":   s.Events,
	}
	if s.Token != "" {
		m["token"] = s.Token
	}
	data, err := MarshalCanonical(m)
	if err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", s.Scenario, err)
	}
	return data, nil
}

// Digest returns the content hash of the snapshot.
// Two runs with the same digest executed the same operations with the same
// outcomes.
func (s *Snapshot) Digest() (string, error) {
	data, err := s.Canonical()
	if err != nil {
		return "", err
	}
	return Hash(DomainTrace, data), nil
}
