package nmea

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arloliu/wiscayenne/internal/options"
)

// Reader reads NMEA lines from a stream and yields position fixes.
//
// Lines that do not start with '$', fail to parse, carry no position or are
// filtered out by type are skipped and logged at debug level.
//
// Note: The Reader is NOT thread-safe.
type Reader struct {
	sc      *bufio.Scanner
	log     zerolog.Logger
	types   []string
	skipped int
}

// ReaderOption configures NewReader.
type ReaderOption = options.Option[*Reader]

// WithLogger sets the logger used for skipped lines.
func WithLogger(log zerolog.Logger) ReaderOption {
	return options.NoError(func(r *Reader) {
		r.log = log
	})
}

// WithSentenceTypes restricts the reader to the given sentence types, e.g.
// "GGA". Receivers usually emit GGA and RMC for the same epoch, so picking
// one avoids duplicate fixes.
func WithSentenceTypes(types ...string) ReaderOption {
	return options.NoError(func(r *Reader) {
		r.types = make([]string, 0, len(types))
		for _, t := range types {
			r.types = append(r.types, strings.ToUpper(t))
		}
	})
}

// NewReader creates a Reader on top of src.
func NewReader(src io.Reader, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		sc:  bufio.NewScanner(src),
		log: zerolog.Nop(),
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Skipped returns the number of lines skipped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Next returns the next fix in the stream.
//
// Returns io.EOF when the stream ends, ctx.Err() if ctx is done before a fix
// is found, or the underlying read error.
func (r *Reader) Next(ctx context.Context) (Reading, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Reading{}, err
		}

		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return Reading{}, err
			}

			return Reading{}, io.EOF
		}

		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "$") {
			r.skip(line, "not a sentence", nil)
			continue
		}

		reading, err := ParseFix(line)
		if err != nil {
			r.skip(line, "no fix", err)
			continue
		}

		if len(r.types) > 0 && !slices.Contains(r.types, reading.Type) {
			r.skip(line, "filtered", nil)
			continue
		}

		return reading, nil
	}
}

// All iterates over the remaining fixes. Iteration stops at the end of the
// stream; any other error is yielded once as the last element.
func (r *Reader) All(ctx context.Context) iter.Seq2[Reading, error] {
	return func(yield func(Reading, error) bool) {
		for {
			reading, err := r.Next(ctx)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Reading{}, err)
				return
			}
			if !yield(reading, nil) {
				return
			}
		}
	}
}

func (r *Reader) skip(line, reason string, err error) {
	r.skipped++
	r.log.Debug().
		Err(err).
		Str("reason", reason).
		Str("line", line).
		Msg("Skipping NMEA line")
}
