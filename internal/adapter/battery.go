package adapter

import (
	"context"
	"errors"
	"fmt"

	"personal-assistant/internal/command"
	"personal-assistant/pkg/battery"
)

// BatteryReader is the battery capability.
type BatteryReader interface {
	Read() (battery.Status, error)
}

type batteryAdapter struct {
	reader BatteryReader
}

// NewBattery wraps reader. A nil reader always reports no battery.
func NewBattery(reader BatteryReader) command.Battery {
	if reader == nil {
		return unavailableBattery{}
	}
	return &batteryAdapter{reader: reader}
}

func (b *batteryAdapter) Status(ctx context.Context) string {
	st, err := b.reader.Read()
	if err != nil {
		if errors.Is(err, battery.ErrNotAvailable) {
			return MsgBatteryUnavailable
		}
		return fmt.Sprintf("Could not read battery: %v", err)
	}

	status := "not charging"
	if st.Plugged {
		status = "charging"
	}
	return fmt.Sprintf("Battery: %d%% (%s)", st.Percent, status)
}

type unavailableBattery struct{}

func (unavailableBattery) Status(ctx context.Context) string {
	return MsgBatteryUnavailable
}
