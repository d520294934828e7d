// SPDX-License-Identifier: EPL-2.0

// Command wavfit re-encodes an audio file as 16-bit PCM WAV at the frame
// rate that brings it under a target size.
//
// Usage:
//
//	wavfit [-size MB] [-mono] [-o output.wav] [-env file] input
//
// Settings default to the WAVFIT_* environment variables, optionally read
// from a .env file; flags take precedence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/wavfit"
	"github.com/ik5/wavfit/audio"
	"github.com/ik5/wavfit/formats/aiff"
	"github.com/ik5/wavfit/formats/flac"
	"github.com/ik5/wavfit/formats/mp3"
	"github.com/ik5/wavfit/formats/vorbis"
	"github.com/ik5/wavfit/formats/wav"
	"github.com/ik5/wavfit/internal/config"
	"github.com/ik5/wavfit/internal/logging"
)

var errUsage = errors.New("usage: wavfit [flags] input")

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "wavfit:", err)
		os.Exit(1)
	}
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.RegisterDecoder(wav.Decoder{})
	reg.RegisterDecoder(aiff.Decoder{})
	reg.RegisterDecoder(mp3.Decoder{})
	reg.RegisterDecoder(vorbis.Decoder{})
	reg.RegisterDecoder(flac.Decoder{})
	return reg
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("wavfit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	envFile := fs.String("env", ".env", "optional dotenv `file` with WAVFIT_* settings")
	size := fs.Float64("size", 0, "target size in `MB` (default from "+config.EnvTargetSizeMB+")")
	mono := fs.Bool("mono", false, "mix all channels down to one")
	output := fs.String("o", "", "output `path` (default <input base><suffix>.wav)")
	level := fs.String("log-level", "", "log level (default from "+config.EnvLogLevel+")")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.TargetSizeMB = *size
		case "mono":
			cfg.Mono = *mono
		case "log-level":
			cfg.LogLevel = *level
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(logging.WithLevel(cfg.LogLevel), logging.WithOutput(stderr))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	in := fs.Arg(0)
	out := *output
	if out == "" {
		out = OutputPath(in, cfg.Suffix)
	}

	return compressFile(log, newRegistry(), cfg, in, out)
}

func compressFile(log *zap.Logger, reg *audio.Registry, cfg *config.Config, in, out string) error {
	dec, ok := reg.Lookup(in)
	if !ok {
		return fmt.Errorf("%s: unsupported format, want one of %v", in, reg.Formats())
	}

	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}
	defer src.Close()

	log.Debug("decoded",
		zap.String("input", in),
		zap.Int("sample_rate", src.SampleRate()),
		zap.Int("channels", src.Channels()),
	)

	var opts []wavfit.Option
	if cfg.Mono {
		opts = append(opts, wavfit.WithMono())
	}

	res, err := wavfit.Compress(src, cfg.TargetSizeMB, opts...)
	if err != nil {
		return fmt.Errorf("compress %s: %w", in, err)
	}

	if err := os.WriteFile(out, res.Data, 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}

	log.Info("compressed",
		zap.String("input", in),
		zap.String("output", out),
		zap.Int("source_rate", res.SourceRate),
		zap.Int("sample_rate", res.SampleRate),
		zap.Int("channels", res.Channels),
		zap.Int("frames", res.Frames),
		zap.Float64("source_kb", res.SourceSizeKB),
		zap.Float64("size_kb", res.SizeKB),
		zap.Float64("target_mb", cfg.TargetSizeMB),
	)

	return nil
}
