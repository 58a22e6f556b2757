package battery

import (
	"errors"
	"fmt"
	"math"

	"github.com/distatus/battery"
)

// ErrNotAvailable is returned when the host exposes no battery.
var ErrNotAvailable = errors.New("battery: no battery found")

// Reader enumerates the host batteries.
type Reader func() ([]*battery.Battery, error)

// Status is the aggregated charge of all batteries.
type Status struct {
	Percent int
	Plugged bool
}

// Meter reads the battery state of the host.
type Meter struct {
	read Reader
}

// New creates a Meter backed by the operating system.
func New() *Meter {
	return &Meter{read: battery.GetAll}
}

// NewWithReader creates a Meter with a custom reader.
func NewWithReader(r Reader) *Meter {
	return &Meter{read: r}
}

// Probe reports whether the host has at least one readable battery.
func (m *Meter) Probe() error {
	_, err := m.Read()
	return err
}

// Read returns the combined percentage and whether external power is connected.
func (m *Meter) Read() (Status, error) {
	batteries, err := m.read()
	if err != nil && len(batteries) == 0 {
		return Status{}, fmt.Errorf("battery: %w", err)
	}

	var current, full float64
	var plugged, found bool
	for _, b := range batteries {
		if b == nil || b.Full <= 0 {
			continue
		}
		found = true
		current += b.Current
		full += b.Full
		if b.State == battery.Charging || b.State == battery.Full {
			plugged = true
		}
	}
	if !found {
		return Status{}, ErrNotAvailable
	}

	percent := int(math.Min(100, current/full*100))
	return Status{Percent: percent, Plugged: plugged}, nil
}
