package metrics

import (
	stderrors "errors"

	"github.com/distatus/battery"
)

// batteryFunc lists the machine's batteries. HostSource uses battery.GetAll;
// tests substitute fixed readings.
type batteryFunc func() ([]*battery.Battery, error)

// readBattery folds every readable battery into one reading. Charge is
// summed across packs the way the OS tray reports it.
func readBattery(list batteryFunc) (Battery, error) {
	bats, err := list()
	if err != nil {
		var partial battery.Errors
		if !stderrors.As(err, &partial) {
			return Battery{}, ErrUnavailable
		}
		bats = usable(bats, partial)
	}

	var (
		current, full, rate float64
		plugged, found      bool
	)
	for _, b := range bats {
		if b == nil || b.Full <= 0 {
			continue
		}
		found = true
		current += b.Current
		full += b.Full
		switch b.State.Raw {
		case battery.Charging, battery.Full, battery.Idle:
			plugged = true
		case battery.Discharging:
			rate += b.ChargeRate
		}
	}
	if !found {
		return Battery{}, ErrUnavailable
	}

	pct := current / full * 100
	if pct > 100 {
		pct = 100
	}

	left := int64(-1)
	if !plugged && rate > 0 {
		// Current is in mWh and ChargeRate in mW.
		left = int64(current / rate * 3600)
	}

	return Battery{Percent: pct, PowerPlugged: plugged, SecondsLeft: left}, nil
}

// usable drops batteries that couldn't be read at all. Partial reads
// (a missing design capacity, say) are kept.
func usable(bats []*battery.Battery, errs battery.Errors) []*battery.Battery {
	out := make([]*battery.Battery, 0, len(bats))
	for i, b := range bats {
		var fatal battery.ErrFatal
		if i < len(errs) && stderrors.As(errs[i], &fatal) {
			continue
		}
		out = append(out, b)
	}
	return out
}
