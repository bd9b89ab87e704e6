package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/wiscayenne/errs"
	"github.com/arloliu/wiscayenne/internal/config"
	"github.com/arloliu/wiscayenne/internal/framer"
	"github.com/arloliu/wiscayenne/internal/hash"
	"github.com/arloliu/wiscayenne/lpp"
	"github.com/arloliu/wiscayenne/nmea"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"capacity":       "capacity",
	"precision":      "precision",
	"channel":        "channel",
	"device":         "device",
	"device-channel": "device_channel",
	"voc":            "voc",
	"voc-channel":    "voc_channel",
	"battery":        "battery",
	"sentences":      "sentences",
	"log-level":      "log_level",
}

func newEncodeCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode NMEA fixes into LPP frames",
		Long: `Read NMEA 0183 sentences from a file (or stdin when omitted or "-"),
encode every position fix and print one hex encoded frame per line.

A frame is emitted as soon as the next fix would not fit. When --device is
set, every frame starts with the device id record; --voc appends a VOC index
record after every fix.

Examples:
  # High precision fixes from a receiver log, 51-byte frames
  wiscayenne encode --precision high gps.log

  # Tracker records with battery level, prefixed by a named device id
  cat /dev/ttyUSB0 | wiscayenne encode --precision tracker --battery 3700 --device node-07`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args, *cfgFile)
		},
	}

	flags := cmd.Flags()
	flags.Int("capacity", 51, "frame size in bytes (1-255)")
	flags.String("precision", config.PrecisionStandard, "GNSS record: standard, high or tracker")
	flags.Uint8("channel", 1, "channel of GNSS records")
	flags.String("device", "", "device name or 0x-prefixed hex id written at the start of every frame")
	flags.Uint8("device-channel", 0, "channel of device id records")
	flags.Int("voc", -1, "VOC index appended after every fix, -1 to disable")
	flags.Uint8("voc-channel", 2, "channel of VOC index records")
	flags.Int16("battery", 0, "battery level written with tracker precision")
	flags.StringSlice("sentences", []string{"GGA"}, "NMEA sentence types used as fixes (GGA, RMC)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string, cfgFile string) error {
	v := viper.New()
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	set, err := settingsFromConfig(cfg)
	if err != nil {
		return err
	}

	src := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	enc, err := lpp.NewEncoder(cfg.Capacity)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fr, err := framer.New(enc, set, func(frame []byte, records int) error {
		log.Debug().
			Int("bytes", len(frame)).
			Int("records", records).
			Str("fingerprint", fmt.Sprintf("%016x", hash.Sum(frame))).
			Msg("Frame ready")

		_, err := fmt.Fprintf(out, "%X\n", frame)

		return err
	})
	if err != nil {
		return err
	}

	reader, err := nmea.NewReader(src,
		nmea.WithLogger(log),
		nmea.WithSentenceTypes(cfg.Sentences...),
	)
	if err != nil {
		return err
	}

	log.Info().
		Int("capacity", cfg.Capacity).
		Str("precision", cfg.Precision).
		Strs("sentences", cfg.Sentences).
		Msg("Encoding NMEA stream")

	fixes := 0
	for reading, err := range reader.All(cmd.Context()) {
		if err != nil {
			return err
		}

		if err := fr.Add(reading.Fix); err != nil {
			if errors.Is(err, errs.ErrInvalidCoordinate) {
				log.Warn().Err(err).Str("sentence", reading.Type).Msg("Dropping fix")
				continue
			}

			return err
		}
		fixes++
	}

	if err := fr.Flush(); err != nil {
		return err
	}

	log.Info().
		Int("fixes", fixes).
		Int("frames", fr.Frames()).
		Int("skipped_lines", reader.Skipped()).
		Msg("Encoding finished")

	return nil
}

// settingsFromConfig translates the validated configuration into framer settings.
func settingsFromConfig(cfg *config.Config) (framer.Settings, error) {
	set := framer.Settings{
		Channel:       cfg.Channel,
		Battery:       cfg.Battery,
		DeviceChannel: cfg.DeviceChannel,
		VOC:           cfg.VOC,
		VOCChannel:    cfg.VOCChannel,
	}

	switch cfg.Precision {
	case config.PrecisionHigh:
		set.Mode = framer.ModeHigh
	case config.PrecisionTracker:
		set.Mode = framer.ModeTracker
	default:
		set.Mode = framer.ModeStandard
	}

	if cfg.Device != "" {
		id, err := parseDevice(cfg.Device)
		if err != nil {
			return framer.Settings{}, err
		}
		set.DeviceID = &id
	}

	return set, nil
}

// parseDevice accepts a 0x-prefixed hex id or a device name.
func parseDevice(s string) (lpp.DeviceID, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return lpp.ParseDeviceID(s)
	}

	return lpp.DeviceIDFromName(s)
}
