package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/govalues/subunit"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Command line parameter initialization.
	var (
		flagCurrency  string
		flagLevel     string
		flagMajor     bool
		flagRoundTrip bool
	)

	flags := pflag.NewFlagSet("subunitconv", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&flagCurrency, "currency", "c", "USD", "currency code of the amounts")
	flags.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	flags.BoolVarP(&flagMajor, "major", "m", false, "read amounts in major units instead of subunits")
	flags.BoolVarP(&flagRoundTrip, "round-trip", "r", false, "convert amounts to the other representation and back")

	err := flags.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return success
	}
	if err != nil {
		return failure
	}

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	curr, err := subunit.ParseCurr(flagCurrency)
	if err != nil {
		log.Error().Str("currency", flagCurrency).Err(err).Msg("could not parse currency")
		return failure
	}
	if flags.NArg() == 0 {
		log.Error().Msg("no amounts to convert")
		return failure
	}

	conv := convertSubunits
	if flagMajor {
		conv = convertMajorUnits
	}

	for _, arg := range flags.Args() {
		out, err := conv(arg, curr, flagRoundTrip)
		if err != nil {
			log.Error().Str("amount", arg).Str("currency", curr.Code()).Err(err).Msg("could not convert amount")
			return failure
		}
		log.Debug().Str("input", arg).Str("output", out).Str("currency", curr.Code()).Msg("amount converted")
		fmt.Fprintln(stdout, out)
	}

	return success
}

// convertSubunits reads an integer number of subunits and prints it in major
// units, or in subunits again when roundTrip is set.
func convertSubunits(arg string, curr subunit.Currency, roundTrip bool) (string, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return "", fmt.Errorf("parsing subunits: %w", err)
	}
	s := subunit.NewSubunits(n, curr)
	if roundTrip {
		r, err := s.RoundTrip()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(r.Amount(), 10), nil
	}
	m, err := s.Convert()
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(m.Amount(), 'f', -1, 64), nil
}

// convertMajorUnits reads a number of major units and prints it in subunits,
// or in major units again when roundTrip is set.
func convertMajorUnits(arg string, curr subunit.Currency, roundTrip bool) (string, error) {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return "", fmt.Errorf("parsing major units: %w", err)
	}
	m := subunit.NewMajorUnits(f, curr)
	if roundTrip {
		r, err := m.RoundTrip()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(r.Amount(), 'f', -1, 64), nil
	}
	s, err := m.Convert()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(s.Amount(), 10), nil
}
