package nmea

import (
	"testing"

	gonmea "github.com/adrianmo/go-nmea"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/wiscayenne/errs"
)

const (
	ggaDublin  = "$GPGGA,092750.000,5321.6802,N,00630.3372,W,1,8,1.03,61.7,M,55.2,M,,*76"
	ggaNoFix   = "$GPGGA,092751.000,5321.6802,N,00630.3372,W,0,8,1.03,61.7,M,55.2,M,,*76"
	ggaTokyo   = "$GPGGA,101500.000,3541.3692,N,13941.5024,E,1,10,0.80,40.12,M,39.4,M,,*69"
	rmcValid   = "$GPRMC,220516,A,5133.82,N,00042.24,W,173.8,231.8,130694,004.2,W*70"
	rmcVoid    = "$GPRMC,220516,V,5133.82,N,00042.24,W,173.8,231.8,130694,004.2,W*67"
	gsaNoPoint = "$GPGSA,A,3,22,19,18,27,14,03,,,,,,,3.1,2.0,2.4*36"
)

func TestParseFix(t *testing.T) {
	t.Run("GGA", func(t *testing.T) {
		r, err := ParseFix(ggaDublin)
		require.NoError(t, err)
		require.Equal(t, gonmea.TypeGGA, r.Type)
		require.True(t, r.HasAltitude)
		require.Equal(t, 8, r.Satellites)
		require.InDelta(t, 53.361337, r.Fix.Latitude, 1e-6)
		require.InDelta(t, -6.505620, r.Fix.Longitude, 1e-6)
		require.InDelta(t, 61.7, r.Fix.Altitude, 1e-9)
		require.InDelta(t, 1.03*HDOPAccuracyFactor, r.Fix.Accuracy, 1e-9)
		require.NoError(t, r.Fix.Validate())
	})

	t.Run("RMC", func(t *testing.T) {
		r, err := ParseFix(rmcValid)
		require.NoError(t, err)
		require.Equal(t, gonmea.TypeRMC, r.Type)
		require.False(t, r.HasAltitude)
		require.InDelta(t, 51.563667, r.Fix.Latitude, 1e-6)
		require.InDelta(t, -0.704, r.Fix.Longitude, 1e-6)
		require.Zero(t, r.Fix.Altitude)
	})

	t.Run("GGAWithoutFix", func(t *testing.T) {
		_, err := ParseFix(ggaNoFix)
		require.ErrorIs(t, err, errs.ErrNoFix)
	})

	t.Run("VoidRMC", func(t *testing.T) {
		_, err := ParseFix(rmcVoid)
		require.ErrorIs(t, err, errs.ErrNoFix)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := ParseFix(gsaNoPoint)
		require.ErrorIs(t, err, errs.ErrUnsupportedSentence)
	})

	t.Run("BadChecksum", func(t *testing.T) {
		_, err := ParseFix("$GPGGA,092750.000,5321.6802,N,00630.3372,W,1,8,1.03,61.7,M,55.2,M,,*00")
		require.Error(t, err)
		require.NotErrorIs(t, err, errs.ErrNoFix)
	})
}
