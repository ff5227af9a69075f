// Command rnasim runs the lattice Monte Carlo core headlessly: seed or
// load a board, call tryMove (and periodically TryBond) a fixed number of
// times, and optionally log progress, save JSON, or export renderings.
package main

import (
	"flag"
	"log"
	"os"

	"rnalattice/internal/app"
	"rnalattice/internal/core"
	"rnalattice/internal/lattice"
	"rnalattice/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	b, rng := buildBoard(cfg)
	b.Params.Temp = cfg.Temp

	freqs := render.NewPairFrequencyMatrix(b.Len())
	total := cfg.TotalSteps(b.Len())

	accepted := 0
	for i := 0; i < total; i++ {
		if b.TryMove(rng) {
			accepted++
		}
		if cfg.BondEvery > 0 && i%cfg.BondEvery == 0 {
			b.TryBond(rng)
		}
		if cfg.Period > 0 && (i+1)%cfg.Period == 0 {
			freqs.Observe(b.IndexPairs())
			logProgress(cfg, b, i+1, accepted)
		}
	}
	freqs.Observe(b.IndexPairs())

	if err := b.AssertValid(); err != nil {
		log.Fatalf("rnasim: final board failed validation: %v", err)
	}

	savePath := cfg.Save
	if savePath == "" {
		savePath = cfg.JSON
	}
	if savePath != "" {
		writeJSON(b, savePath)
	}
	if cfg.Bitmap != "" {
		writeBitmap(b, cfg.Bitmap)
	}
	if cfg.CSV != "" {
		writeCSV(freqs, cfg.CSV)
	}
}

func buildBoard(cfg *app.Config) (*lattice.Board, *core.RNG) {
	rng := core.NewRNG(cfg.Seed)
	if cfg.Load != "" {
		data, err := os.ReadFile(cfg.Load)
		if err != nil {
			log.Fatalf("rnasim: read %s: %v", cfg.Load, err)
		}
		b, err := lattice.FromJSON(data)
		if err != nil {
			log.Fatalf("rnasim: parse %s: %v", cfg.Load, err)
		}
		return b, rng
	}

	b := lattice.New(cfg.XSize, cfg.YSize, cfg.ZSize)
	if cfg.Init != "" {
		if err := b.AddSeq(cfg.Init); err != nil {
			log.Fatalf("rnasim: addSeq: %v", err)
		}
	}
	b.AddBases(cfg.Density, rng)
	return b, rng
}

func logProgress(cfg *app.Config, b *lattice.Board, moves, accepted int) {
	log.Printf("move %d/%d accepted=%d paired=%d energy=%.3f", moves, cfg.TotalSteps(b.Len()), accepted, len(b.IndexPairs()), b.FoldEnergy())
	if cfg.Folds {
		if cfg.Monochrome {
			log.Printf("fold: %s", b.FoldString())
		} else {
			log.Printf("fold: %s", b.ColoredFoldString())
		}
	}
	if cfg.Seqs {
		for seq, n := range b.SequenceFreqs() {
			log.Printf("seq %q: %d", seq, n)
		}
	}
}

func writeJSON(b *lattice.Board, path string) {
	data, err := b.ToJSON(lattice.MarshalOptions{IncludeFold: true, IncludeEnergy: true, IncludeSequence: true})
	if err != nil {
		log.Fatalf("rnasim: marshal board: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("rnasim: write %s: %v", path, err)
	}
}

func writeBitmap(b *lattice.Board, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("rnasim: create %s: %v", path, err)
	}
	defer f.Close()
	if err := render.WriteSlicePNG(f, b, 0); err != nil {
		log.Fatalf("rnasim: write bitmap: %v", err)
	}
}

func writeCSV(freqs *render.PairFrequencyMatrix, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("rnasim: create %s: %v", path, err)
	}
	defer f.Close()
	if err := freqs.WriteCSV(f); err != nil {
		log.Fatalf("rnasim: write CSV: %v", err)
	}
}
