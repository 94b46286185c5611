// meccanotx sends one MECCANO / ERECTOR IR command from a Linux board
// (Raspberry Pi and friends) by bit-banging a sysfs GPIO pin.
//
//	meccanotx -channel A -command plus
//	meccanotx -config tx.yaml -selector 12 -repeat 3
package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sparques/irtx"
	"github.com/sparques/irtx/internal/config"
	"github.com/sparques/irtx/meccano"
)

type outputPin interface {
	irtx.Pin
	Close() error
}

type options struct {
	configPath string
	pin        int
	selector   int
	channel    string
	command    string
	repeat     int
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "transmitter profile (YAML); defaults to the Micro RC board")
	flag.IntVar(&opts.pin, "pin", -1, "GPIO pin driving the IR LED, overrides the profile")
	flag.IntVar(&opts.selector, "selector", 0, "command number 1-12: A+ A- Aoff B+ ... Doff")
	flag.StringVar(&opts.channel, "channel", "", "channel A-D, used with -command instead of -selector")
	flag.StringVar(&opts.command, "command", "", "plus, minus or off")
	flag.IntVar(&opts.repeat, "repeat", 1, "how many times to send the frame")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(opts); err != nil {
		log.Fatal().Err(err).Msg("transmit failed")
	}
}

func run(opts options) error {
	sel, err := selectorFromFlags(opts.selector, opts.channel, opts.command)
	if err != nil {
		return err
	}
	profile, err := loadProfile(opts.configPath)
	if err != nil {
		return err
	}
	if opts.pin >= 0 {
		profile.Pin = opts.pin
	}

	log.Debug().
		Str("board", profile.Board).
		Int("pin", profile.Pin).
		Dur("edge_delay", profile.Compensation().EdgeDelay).
		Dur("guard", profile.Guard()).
		Msg("profile loaded")

	pin, err := openPin(profile.Pin)
	if err != nil {
		return err
	}
	defer pin.Close()

	// the carrier is timed by spinning; keep it on one thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tx := irtx.NewTxDevice(irtx.TxConfig{
		Carrier: irtx.NewBitBangCarrier(pin, irtx.BusyWait, profile.Compensation()),
		Guard:   profile.Guard(),
	})
	tr := meccano.NewTransmitter(tx, profile.Infrared)
	nominal, err := tr.FrameDuration(sel)
	if err != nil {
		return err
	}

	for i := 0; i < opts.repeat; i++ {
		start := time.Now()
		if err := tr.Transmit(sel); err != nil {
			return errors.Wrapf(err, "send %v", sel)
		}
		log.Debug().
			Int("n", i+1).
			Dur("took", time.Since(start)).
			Dur("nominal", nominal).
			Msg("frame sent")
	}
	log.Info().Stringer("command", sel).Int("frames", opts.repeat).Msg("sent")
	return nil
}

func loadProfile(path string) (config.Profile, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadProfile(path)
}

// selectorFromFlags prefers -channel/-command when either is set.
func selectorFromFlags(selector int, channel, command string) (meccano.Selector, error) {
	if channel == "" && command == "" {
		if selector < 1 || selector > meccano.NumSelectors {
			return 0, errors.Wrapf(meccano.ErrInvalidSelector, "-selector %d", selector)
		}
		return meccano.Selector(selector), nil
	}
	ch, err := meccano.ParseChannel(channel)
	if err != nil {
		return 0, err
	}
	cmd, err := meccano.ParseCommand(command)
	if err != nil {
		return 0, err
	}
	return meccano.SelectorFor(ch, cmd)
}
