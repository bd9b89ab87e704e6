// Package framer packs readings into fixed-capacity LPP frames.
//
// A reading becomes a group of records (optional device id, one GNSS record,
// optional VOC index). Groups are never split across frames: when the next
// group does not fit, the current frame is emitted first.
package framer

import (
	"fmt"

	"github.com/arloliu/wiscayenne/errs"
	"github.com/arloliu/wiscayenne/format"
	"github.com/arloliu/wiscayenne/lpp"
)

// Mode selects the GNSS record written for each fix.
type Mode uint8

const (
	ModeStandard Mode = iota // GNSS4 on Settings.Channel
	ModeHigh                 // GNSS6 on Settings.Channel
	ModeTracker              // GNSSH on the reserved channel
)

// Kind returns the GNSS record kind written in this mode.
func (m Mode) Kind() format.Kind {
	switch m {
	case ModeHigh:
		return format.KindGNSS6
	case ModeTracker:
		return format.KindGNSSH
	default:
		return format.KindGNSS4
	}
}

// Settings describes the records produced per reading.
type Settings struct {
	Mode    Mode
	Channel uint8
	Battery int16

	// DeviceID, when non-nil, is written once at the start of every frame.
	DeviceID      *lpp.DeviceID
	DeviceChannel uint8

	// VOC, when non-negative, is appended after every fix.
	VOC        int
	VOCChannel uint8
}

// EmitFunc receives each finished frame. The slice is only valid during the call.
type EmitFunc func(frame []byte, records int) error

// Framer accumulates groups into an encoder and emits full frames.
//
// Note: The Framer is NOT thread-safe.
type Framer struct {
	enc    *lpp.Encoder
	set    Settings
	emit   EmitFunc
	frames int
}

// New creates a Framer writing frames of the encoder's capacity.
func New(enc *lpp.Encoder, set Settings, emit EmitFunc) (*Framer, error) {
	f := &Framer{enc: enc, set: set, emit: emit}
	if need := f.groupSize(true); need > enc.Cap() {
		return nil, fmt.Errorf("%w: group needs %d bytes, frame holds %d", errs.ErrFrameTooSmall, need, enc.Cap())
	}

	return f, nil
}

// Frames returns the number of frames emitted so far.
func (f *Framer) Frames() int {
	return f.frames
}

// groupSize is the number of bytes one reading occupies.
func (f *Framer) groupSize(frameStart bool) int {
	size := format.RecordSize(f.set.Mode.Kind())
	if frameStart && f.set.DeviceID != nil {
		size += format.RecordSize(format.KindDeviceID)
	}
	if f.set.VOC >= 0 {
		size += format.RecordSize(format.KindVOC)
	}

	return size
}

// Add appends one reading, emitting the current frame first if the reading
// does not fit. An invalid fix is rejected without touching the frame.
func (f *Framer) Add(fix lpp.GNSSFix) error {
	if err := f.check(fix); err != nil {
		return err
	}

	if f.groupSize(f.enc.Size() == 0) > f.enc.Remaining() {
		if err := f.Flush(); err != nil {
			return err
		}
	}

	if f.enc.Size() == 0 && f.set.DeviceID != nil {
		if _, err := f.enc.AddDeviceID(f.set.DeviceChannel, *f.set.DeviceID); err != nil {
			return err
		}
	}

	if err := f.addFix(fix); err != nil {
		return err
	}

	if f.set.VOC >= 0 {
		if _, err := f.enc.AddVOCIndex(f.set.VOCChannel, uint32(f.set.VOC)); err != nil {
			return err
		}
	}

	return nil
}

// check runs the scaling the encoder will do, so a group is never left
// half written.
func (f *Framer) check(fix lpp.GNSSFix) error {
	if err := fix.Validate(); err != nil {
		return err
	}

	if f.set.Mode != ModeTracker {
		_, err := lpp.ScaleCentimeters(fix.Altitude)
		return err
	}

	if _, err := lpp.ScaleMeters(fix.Altitude); err != nil {
		return err
	}
	_, err := lpp.ScaleMeters(fix.Accuracy)

	return err
}

func (f *Framer) addFix(fix lpp.GNSSFix) error {
	var err error
	switch f.set.Mode {
	case ModeTracker:
		_, err = f.enc.AddTrackerFix(fix, f.set.Battery)
	case ModeHigh:
		_, err = f.enc.AddFix(f.set.Channel, fix, lpp.PrecisionHigh)
	default:
		_, err = f.enc.AddFix(f.set.Channel, fix, lpp.PrecisionStandard)
	}

	return err
}

// Flush emits the current frame if it holds any record and starts a new one.
func (f *Framer) Flush() error {
	if f.enc.Size() == 0 {
		return nil
	}

	if err := f.emit(f.enc.Bytes(), f.enc.Count()); err != nil {
		return err
	}

	f.frames++
	f.enc.Reset()

	return nil
}
