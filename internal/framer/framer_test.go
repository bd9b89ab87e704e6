package framer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wiscayenne/errs"
	"github.com/arloliu/wiscayenne/format"
	"github.com/arloliu/wiscayenne/lpp"
)

var tokyo = lpp.GNSSFix{Latitude: 35.6895, Longitude: 139.6917, Altitude: 40.12, Accuracy: 4}

type collector struct {
	frames  [][]byte
	records []int
}

func (c *collector) emit(frame []byte, records int) error {
	c.frames = append(c.frames, bytes.Clone(frame))
	c.records = append(c.records, records)

	return nil
}

func newFramer(t *testing.T, capacity int, set Settings) (*Framer, *collector) {
	t.Helper()

	enc, err := lpp.NewEncoder(capacity)
	require.NoError(t, err)

	c := &collector{}
	f, err := New(enc, set, c.emit)
	require.NoError(t, err)

	return f, c
}

func TestMode_Kind(t *testing.T) {
	require.Equal(t, format.KindGNSS4, ModeStandard.Kind())
	require.Equal(t, format.KindGNSS6, ModeHigh.Kind())
	require.Equal(t, format.KindGNSSH, ModeTracker.Kind())
}

func TestFramer_PacksGroups(t *testing.T) {
	id := lpp.DeviceID{0x01, 0x02, 0x03, 0x04}
	f, c := newFramer(t, 51, Settings{
		Mode:       ModeStandard,
		Channel:    1,
		DeviceID:   &id,
		VOC:        112,
		VOCChannel: 2,
	})

	for range 4 {
		require.NoError(t, f.Add(tokyo))
	}
	require.Len(t, c.frames, 1, "first frame is emitted when the fourth reading does not fit")
	require.NoError(t, f.Flush())
	require.Equal(t, 2, f.Frames())

	// 6 (device) + 3 * (11 GNSS4 + 4 VOC) = 51
	require.Len(t, c.frames[0], 51)
	require.Equal(t, 7, c.records[0])
	require.Len(t, c.frames[1], 21)
	require.Equal(t, 3, c.records[1])

	for _, frame := range c.frames {
		require.Equal(t, []byte{0x00, 0xFF, 0x01, 0x02, 0x03, 0x04}, frame[:6], "every frame starts with the device id")
		require.Equal(t, []byte{0x01, 0x88, 0x05, 0x72, 0x1F, 0x15, 0x50, 0xB5, 0x00, 0x0F, 0xAC}, frame[6:17])
		require.Equal(t, []byte{0x02, 0x8A, 0x00, 0x70}, frame[17:21])
	}
}

func TestFramer_Tracker(t *testing.T) {
	f, c := newFramer(t, 16, Settings{Mode: ModeTracker, Battery: 3700, VOC: -1})

	require.NoError(t, f.Add(tokyo))
	require.NoError(t, f.Add(tokyo))
	require.NoError(t, f.Flush())

	require.Len(t, c.frames, 2)
	for _, frame := range c.frames {
		require.Len(t, frame, 16)
		require.Equal(t, []byte{format.ChannelGNSSH, 0x8B}, frame[:2])
		require.Equal(t, []byte{0x0E, 0x74}, frame[14:16])
	}
}

func TestFramer_InvalidFixKeepsFrame(t *testing.T) {
	f, c := newFramer(t, 32, Settings{Mode: ModeHigh, Channel: 3, VOC: -1})

	require.NoError(t, f.Add(tokyo))
	err := f.Add(lpp.GNSSFix{Latitude: 120})
	require.ErrorIs(t, err, errs.ErrInvalidCoordinate)

	err = f.Add(lpp.GNSSFix{Altitude: 1e8})
	require.ErrorIs(t, err, errs.ErrInvalidCoordinate)

	require.NoError(t, f.Flush())
	require.Len(t, c.frames, 1)
	require.Len(t, c.frames[0], 13)
}

func TestFramer_TrackerAltitudeOutOfRange(t *testing.T) {
	id := lpp.DeviceID{9, 9, 9, 9}
	f, c := newFramer(t, 32, Settings{Mode: ModeTracker, DeviceID: &id, VOC: -1})

	err := f.Add(lpp.GNSSFix{Altitude: 40000})
	require.ErrorIs(t, err, errs.ErrInvalidCoordinate)
	require.NoError(t, f.Flush())
	require.Empty(t, c.frames, "no half written group")
}

func TestFramer_FlushEmpty(t *testing.T) {
	f, c := newFramer(t, 16, Settings{VOC: -1})
	require.NoError(t, f.Flush())
	require.Empty(t, c.frames)
	require.Equal(t, 0, f.Frames())
}

func TestFramer_FrameTooSmall(t *testing.T) {
	enc, err := lpp.NewEncoder(15)
	require.NoError(t, err)

	_, err = New(enc, Settings{Mode: ModeTracker, VOC: -1}, func([]byte, int) error { return nil })
	require.ErrorIs(t, err, errs.ErrFrameTooSmall)
}

func TestFramer_EmitError(t *testing.T) {
	enc, err := lpp.NewEncoder(11)
	require.NoError(t, err)

	sendErr := errors.New("radio busy")
	f, err := New(enc, Settings{VOC: -1}, func([]byte, int) error { return sendErr })
	require.NoError(t, err)

	require.NoError(t, f.Add(tokyo))
	require.ErrorIs(t, f.Add(tokyo), sendErr)
	require.Equal(t, 0, f.Frames())
}
