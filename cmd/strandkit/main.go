// Command strandkit renders a configured pattern to an LED strip in a
// fixed-rate tick loop. Hardware is reached over SPI; without a port it
// falls back to a console preview.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/strandkit/strandkit/internal/config"
	"github.com/strandkit/strandkit/internal/control"
	"github.com/strandkit/strandkit/internal/driver"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		spiDev     = flag.String("spi", "", "SPI port name; empty selects the first available")
		sink       = flag.String("sink", "auto", "output sink: auto | spi | nrzled | preview")
		brightness = flag.Float64("brightness", -1, "override global brightness 0..1")
		fps        = flag.Int("fps", 0, "override frames per second")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
	}
	if *brightness >= 0 {
		cfg.Brightness = *brightness
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}

	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("periph host init failed")
	}

	ctl, err := buildControl(cfg, *sink, *spiDev)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline build failed")
	}
	defer ctl.Close()

	log.Info().
		Int("pixels", ctl.PixelCount()).
		Int("fps", cfg.FPS).
		Str("chipset", cfg.Driver.Chipset).
		Str("pattern", cfg.Pattern.Kind).
		Msg("ticking")
	run(ctl, cfg.FPS)
}

func buildControl(cfg *config.Config, sink, spiDev string) (*control.Control, error) {
	if spiDev == "" {
		spiDev = cfg.Driver.SPIDev
	}
	switch sink {
	case "preview":
		return assemblePreview(cfg)

	case "nrzled":
		// Offload the bit timing to periph's NRZ encoder.
		port, err := spireg.Open(spiDev)
		if err != nil {
			return nil, fmt.Errorf("open spi: %w", err)
		}
		dev, err := nrzled.NewSPI(port, &nrzled.Opts{
			NumPixels: cfg.Pixels,
			Channels:  3,
			Freq:      2500 * physic.KiloHertz,
		})
		if err != nil {
			return nil, fmt.Errorf("nrzled: %w", err)
		}
		drw, err := driver.NewDrawer(dev, cfg.Pixels)
		if err != nil {
			return nil, err
		}
		return cfg.AssembleWith(drw)

	case "spi":
		port, err := spireg.Open(spiDev)
		if err != nil {
			return nil, fmt.Errorf("open spi: %w", err)
		}
		return cfg.Assemble(port)

	default: // auto
		port, err := spireg.Open(spiDev)
		if err != nil {
			log.Warn().Err(err).Msg("no SPI port, using console preview")
			return assemblePreview(cfg)
		}
		return cfg.Assemble(port)
	}
}

func assemblePreview(cfg *config.Config) (*control.Control, error) {
	drw, err := driver.NewDrawer(screen.New(cfg.Pixels), cfg.Pixels)
	if err != nil {
		return nil, err
	}
	return cfg.AssembleWith(drw)
}

// run ticks the pipeline until interrupted, then blanks the strip. A
// failed frame is logged and dropped; the next tick retries naturally.
func run(ctl *control.Control, fps int) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ticker.C:
			elapsed := uint64(time.Since(start).Milliseconds())
			if err := ctl.Tick(elapsed); err != nil {
				log.Warn().Err(err).Uint64("t_ms", elapsed).Msg("frame dropped")
			}

		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			ctl.SetBrightness(0)
			if err := ctl.Tick(uint64(time.Since(start).Milliseconds())); err != nil {
				log.Warn().Err(err).Msg("blank frame failed")
			}
			return
		}
	}
}
