package lpp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wiscayenne/errs"
	"github.com/arloliu/wiscayenne/format"
)

func TestGNSSFix_Validate(t *testing.T) {
	tests := []struct {
		name  string
		fix   GNSSFix
		valid bool
	}{
		{"Tokyo", GNSSFix{Latitude: 35.6895, Longitude: 139.6917, Altitude: 40}, true},
		{"Poles", GNSSFix{Latitude: -90, Longitude: 180}, true},
		{"LatitudeTooLarge", GNSSFix{Latitude: 90.0001}, false},
		{"LongitudeTooSmall", GNSSFix{Longitude: -180.5}, false},
		{"NaNLatitude", GNSSFix{Latitude: math.NaN()}, false},
		{"InfAltitude", GNSSFix{Altitude: math.Inf(1)}, false},
		{"NegativeAccuracy", GNSSFix{Accuracy: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fix.Validate()
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidCoordinate)
		})
	}
}

func TestPrecision(t *testing.T) {
	kind, err := PrecisionStandard.Kind()
	require.NoError(t, err)
	require.Equal(t, format.KindGNSS4, kind)

	kind, err = PrecisionHigh.Kind()
	require.NoError(t, err)
	require.Equal(t, format.KindGNSS6, kind)

	_, err = Precision(9).Kind()
	require.ErrorIs(t, err, errs.ErrUnknownPrecision)

	require.Equal(t, "standard", PrecisionStandard.String())
	require.Equal(t, "high", PrecisionHigh.String())
	require.Equal(t, "unknown", Precision(9).String())
}

func TestEncoder_AddFix(t *testing.T) {
	fix := GNSSFix{Latitude: 35.6895, Longitude: 139.6917, Altitude: 40.12}

	t.Run("Standard", func(t *testing.T) {
		enc := newTestEncoder(t, 32)
		n, err := enc.AddFix(1, fix, PrecisionStandard)
		require.NoError(t, err)
		require.Equal(t, 11, n)
		require.Equal(t, []byte{0x01, 0x88, 0x05, 0x72, 0x1F, 0x15, 0x50, 0xB5, 0x00, 0x0F, 0xAC}, enc.Bytes())
	})

	t.Run("High", func(t *testing.T) {
		enc := newTestEncoder(t, 32)
		n, err := enc.AddFix(2, GNSSFix{Latitude: 35.689487, Longitude: 139.691706, Altitude: 40.12}, PrecisionHigh)
		require.NoError(t, err)
		require.Equal(t, 13, n)
		require.Equal(t, []byte{0x02, 0x89, 0x02, 0x20, 0x94, 0x0F, 0x08, 0x53, 0x86, 0xBA, 0x00, 0x0F, 0xAC}, enc.Bytes())
	})

	t.Run("InvalidFixWritesNothing", func(t *testing.T) {
		enc := newTestEncoder(t, 32)
		n, err := enc.AddFix(1, GNSSFix{Latitude: 91}, PrecisionStandard)
		require.ErrorIs(t, err, errs.ErrInvalidCoordinate)
		require.Equal(t, 0, n)
		require.Equal(t, 0, enc.Size())
	})

	t.Run("UnknownPrecision", func(t *testing.T) {
		enc := newTestEncoder(t, 32)
		_, err := enc.AddFix(1, fix, Precision(7))
		require.ErrorIs(t, err, errs.ErrUnknownPrecision)
		require.Equal(t, 0, enc.Size())
	})

	t.Run("Overflow", func(t *testing.T) {
		enc := newTestEncoder(t, 12)
		_, err := enc.AddFix(1, fix, PrecisionHigh)
		require.ErrorIs(t, err, errs.ErrBufferOverflow)
		require.Equal(t, 0, enc.Size())
	})
}

func TestEncoder_AddTrackerFix(t *testing.T) {
	fix := GNSSFix{Latitude: -33.8688, Longitude: 151.2093, Altitude: 40.4, Accuracy: 4.6}

	t.Run("Encodes", func(t *testing.T) {
		enc := newTestEncoder(t, 32)
		n, err := enc.AddTrackerFix(fix, 3700)
		require.NoError(t, err)
		require.Equal(t, 16, n)
		require.Equal(t, []byte{
			0x01, 0x8B,
			0xFD, 0xFB, 0x34, 0x00,
			0x09, 0x03, 0x45, 0x54,
			0x00, 0x28,
			0x00, 0x05,
			0x0E, 0x74,
		}, enc.Bytes())
	})

	t.Run("UsesReservedChannel", func(t *testing.T) {
		enc := newTestEncoder(t, 32)
		_, err := enc.AddTrackerFix(fix, 0)
		require.NoError(t, err)
		require.Equal(t, format.ChannelGNSSH, enc.Bytes()[0])
	})

	t.Run("AltitudeBeyond16Bits", func(t *testing.T) {
		enc := newTestEncoder(t, 32)
		_, err := enc.AddTrackerFix(GNSSFix{Altitude: 40000}, 0)
		require.ErrorIs(t, err, errs.ErrInvalidCoordinate)
		require.Equal(t, 0, enc.Size())
	})

	t.Run("NegativeAltitude", func(t *testing.T) {
		enc := newTestEncoder(t, 32)
		_, err := enc.AddTrackerFix(GNSSFix{Altitude: -28}, -1)
		require.NoError(t, err)
		require.Equal(t, []byte{0xFF, 0xE4}, enc.Bytes()[10:12])
		require.Equal(t, []byte{0xFF, 0xFF}, enc.Bytes()[14:16])
	})
}
