// Command srsgen generates a KZG structured reference string over BLS12-381
// and writes it to a file.
//
// Usage:
//
//	srsgen -gates N -out FILE [-format native|kzg] [-secret-source random|passphrase|seed] [-seed U64] [-verify]
//
// The secret is sampled in-process (random), derived from a passphrase typed
// on the terminal (passphrase), or derived from a public seed (seed). The last
// one is only meant for tests: anyone knowing the seed knows the secret.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/kzg"
	"github.com/jsign/srs"
	"github.com/jsign/srs/common"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const (
	formatNative = "native"
	formatKZG    = "kzg"

	sourceRandom     = "random"
	sourcePassphrase = "passphrase"
	sourceSeed       = "seed"

	minPassphraseLen = 20
)

type config struct {
	gates        int
	out          string
	format       string
	secretSource string
	seed         uint64
	seedSet      bool
	verify       bool

	// readPassword reads one line from the terminal without echo.
	readPassword func(prompt string) ([]byte, error)
}

func (c *config) validate() error {
	if c.gates < 0 {
		return fmt.Errorf("gates must be non-negative, got %d", c.gates)
	}
	if c.out == "" {
		return errors.New("missing output file")
	}
	switch c.format {
	case formatNative, formatKZG:
	default:
		return fmt.Errorf("unknown format %q", c.format)
	}
	switch c.secretSource {
	case sourceRandom, sourcePassphrase, sourceSeed:
	default:
		return fmt.Errorf("unknown secret source %q", c.secretSource)
	}
	if c.seedSet && c.secretSource != sourceSeed {
		return fmt.Errorf("-seed requires -secret-source %s", sourceSeed)
	}
	return nil
}

func main() {
	cfg := config{readPassword: readTerminalPassword}
	flag.IntVar(&cfg.gates, "gates", -1, "number of gates of the circuit the SRS is for")
	flag.StringVar(&cfg.out, "out", "", "output file")
	flag.StringVar(&cfg.format, "format", formatNative, "output format: native or kzg (gnark-crypto kzg.SRS)")
	flag.StringVar(&cfg.secretSource, "secret-source", sourceRandom, "where the secret comes from: random, passphrase or seed")
	flag.Uint64Var(&cfg.seed, "seed", 0, "seed for -secret-source seed (insecure)")
	flag.BoolVar(&cfg.verify, "verify", false, "read the written file back and verify it")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.seedSet = true
		}
	})

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal().Err(err).Msg("parsing log level")
	}
	logger = logger.Level(level)

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("srsgen failed")
		os.Exit(1)
	}
}

func run(cfg config, logger zerolog.Logger) error {
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %s", err)
	}

	src, err := secretSource(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Int("gates", cfg.gates).
		Int("g1_powers", cfg.gates+srs.ExtraG1Powers).
		Str("secret_source", cfg.secretSource).
		Msg("generating srs")
	s, err := srs.Random(cfg.gates, src)
	if err != nil {
		return fmt.Errorf("generating srs: %s", err)
	}

	if err := writeFile(cfg.out, cfg.format, s); err != nil {
		return err
	}
	logger.Info().Str("file", cfg.out).Str("format", cfg.format).Msg("srs written")

	if !cfg.verify {
		return nil
	}
	read, err := readFile(cfg.out, cfg.format)
	if err != nil {
		return fmt.Errorf("reading back %s: %s", cfg.out, err)
	}
	ok, err := srs.Verify(read, common.CryptoSource{})
	if err != nil {
		return fmt.Errorf("verifying %s: %s", cfg.out, err)
	}
	if !ok {
		return fmt.Errorf("srs in %s is not well formed", cfg.out)
	}
	logger.Info().Str("file", cfg.out).Msg("srs verified")
	return nil
}

func secretSource(cfg config, logger zerolog.Logger) (common.ScalarSource, error) {
	switch cfg.secretSource {
	case sourceSeed:
		logger.Warn().Msg("secret derived from a public seed, the srs is insecure")
		rand, err := common.NewRand(cfg.seed)
		if err != nil {
			return nil, fmt.Errorf("creating seeded source: %s", err)
		}
		return rand, nil
	case sourcePassphrase:
		return common.ScalarSourceFunc(func() (fr.Element, error) {
			return passphraseSecret(cfg.readPassword)
		}), nil
	default:
		return common.CryptoSource{}, nil
	}
}

func passphraseSecret(readPassword func(prompt string) ([]byte, error)) (fr.Element, error) {
	pass, err := readPassword(fmt.Sprintf("enter passphrase (at least %d bytes): ", minPassphraseLen))
	if err != nil {
		return fr.Element{}, fmt.Errorf("reading passphrase: %s", err)
	}
	defer clear(pass)
	if len(pass) < minPassphraseLen {
		return fr.Element{}, fmt.Errorf("passphrase too short: %d < %d bytes", len(pass), minPassphraseLen)
	}
	confirm, err := readPassword("confirm passphrase: ")
	if err != nil {
		return fr.Element{}, fmt.Errorf("reading passphrase: %s", err)
	}
	defer clear(confirm)
	if !bytes.Equal(pass, confirm) {
		return fr.Element{}, errors.New("passphrases do not match")
	}
	return common.FrFromPassphrase(pass)
}

func readTerminalPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func writeFile(path, format string, s *srs.Srs) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating %s: %s", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %s", path, cerr)
		}
	}()
	// OpenFile only applies the mode when it creates the file.
	if err := f.Chmod(0600); err != nil {
		return fmt.Errorf("restricting permissions of %s: %s", path, err)
	}

	switch format {
	case formatKZG:
		if _, err := s.ToKZG().WriteTo(f); err != nil {
			return fmt.Errorf("writing %s: %s", path, err)
		}
	default:
		if err := s.Serialize(f); err != nil {
			return fmt.Errorf("writing %s: %s", path, err)
		}
	}
	return nil
}

func readFile(path, format string) (*srs.Srs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case formatKZG:
		var k kzg.SRS
		if _, err := k.ReadFrom(f); err != nil {
			return nil, err
		}
		return srs.FromKZG(&k)
	default:
		return srs.FromReader(f)
	}
}
