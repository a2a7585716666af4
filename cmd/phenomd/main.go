// Command phenomd computes the IMRPhenomD phenomenological parameters of an
// aligned-spin binary and prints them as text or JSON.
//
// Parameters come from flags, PHENOMD_* environment variables or a config
// file:
//
//	phenomd --m1 36 --m2 29 --chi1 0.3 --chi2 -0.2 --format json
//	PHENOMD_M1=50 PHENOMD_M2=10 phenomd
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	phenomd "github.com/tphakala/go-phenomd"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if isHelp(err) {
			return
		}
		logger.Fatal().Err(err).Msg("phenomd failed")
	}
}

// run resolves configuration, builds the model and writes the result to out.
func run(args []string, out io.Writer, logger zerolog.Logger) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	logger = logger.Level(cfg.LogLevel)

	modelCfg := &phenomd.Config{
		DisableSIMD: cfg.NoSIMD,
		Logger:      &logger,
	}
	if cfg.QNMTable != "" {
		table, err := phenomd.LoadQNMTableFile(cfg.QNMTable)
		if err != nil {
			return err
		}
		lo, hi := table.Bounds()
		logger.Info().
			Str("path", cfg.QNMTable).
			Int("nodes", table.Len()).
			Float64("spin_min", lo).
			Float64("spin_max", hi).
			Msg("Loaded QNM table")
		modelCfg.QNMTable = table
	}

	model, err := phenomd.NewModel(modelCfg)
	if err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}

	res, err := model.Compute(cfg.Params)
	if err != nil {
		return err
	}

	logger.Debug().
		Float64("m1", cfg.Params.M1).
		Float64("m2", cfg.Params.M2).
		Float64("eta", res.Derived.Eta).
		Float64("chi_pn", res.Derived.ChiPN).
		Float64("fRD", res.Ringdown.FRD).
		Float64("fdamp", res.Ringdown.FDamp).
		Msg("Computed parameters")

	return writeResult(out, res, cfg.Format)
}
