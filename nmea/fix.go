// Package nmea turns NMEA 0183 sentences from a GNSS receiver into fixes
// ready for the lpp encoder.
//
// Only sentences that carry a position are used: GGA (position, altitude,
// HDOP) and RMC (position only). Everything else is reported as
// errs.ErrUnsupportedSentence so stream readers can skip it.
package nmea

import (
	"fmt"

	gonmea "github.com/adrianmo/go-nmea"

	"github.com/arloliu/wiscayenne/errs"
	"github.com/arloliu/wiscayenne/lpp"
)

// HDOPAccuracyFactor converts horizontal dilution of precision into an
// accuracy estimate in meters, assuming a 5 m user equivalent range error.
const HDOPAccuracyFactor = 5.0

// Reading is a fix decoded from one sentence.
type Reading struct {
	Fix lpp.GNSSFix
	// Type is the sentence type the fix came from, e.g. "GGA".
	Type string
	// HasAltitude is false for sentences without altitude (RMC); Fix.Altitude is then 0.
	HasAltitude bool
	// Satellites is the number of satellites in use, 0 if not reported.
	Satellites int
}

// FixFromSentence extracts a fix from a parsed sentence.
//
// Returns errs.ErrNoFix if the receiver reports no valid position and
// errs.ErrUnsupportedSentence for sentence types without a position.
func FixFromSentence(s gonmea.Sentence) (Reading, error) {
	switch m := s.(type) {
	case gonmea.GGA:
		if m.FixQuality == gonmea.Invalid || m.FixQuality == "" {
			return Reading{}, fmt.Errorf("%w: GGA fix quality %q", errs.ErrNoFix, m.FixQuality)
		}

		return Reading{
			Fix: lpp.GNSSFix{
				Latitude:  m.Latitude,
				Longitude: m.Longitude,
				Altitude:  m.Altitude,
				Accuracy:  m.HDOP * HDOPAccuracyFactor,
			},
			Type:        gonmea.TypeGGA,
			HasAltitude: true,
			Satellites:  int(m.NumSatellites),
		}, nil

	case gonmea.RMC:
		if m.Validity != gonmea.ValidRMC {
			return Reading{}, fmt.Errorf("%w: RMC validity %q", errs.ErrNoFix, m.Validity)
		}

		return Reading{
			Fix: lpp.GNSSFix{
				Latitude:  m.Latitude,
				Longitude: m.Longitude,
			},
			Type: gonmea.TypeRMC,
		}, nil

	default:
		return Reading{}, fmt.Errorf("%w: %s", errs.ErrUnsupportedSentence, s.DataType())
	}
}

// ParseFix parses one raw sentence and extracts its fix.
func ParseFix(raw string) (Reading, error) {
	s, err := gonmea.Parse(raw)
	if err != nil {
		return Reading{}, err
	}

	return FixFromSentence(s)
}
