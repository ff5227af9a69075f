package app

import "flag"

// Config represents the command-line parameters shared by cmd/rnasim and
// cmd/rnaview.
type Config struct {
	XSize, YSize, ZSize int
	Init                string
	Density             float64
	Seed                int64

	TotalMoves int
	UnitMoves  int
	Folds      bool
	Seqs       bool
	Monochrome bool
	Period     int
	Temp       float64

	Load   string
	Save   string
	JSON   string
	Bitmap string
	CSV    string

	Scale       int
	HUDWidth    int
	BondEvery   int
	MovesPerSec int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		XSize: 64, YSize: 64, ZSize: 1,
		Density:   0.1,
		Seed:      42,
		UnitMoves: 1000,
		Period:    10000,
		Temp:      1,
		Scale:     6,
		HUDWidth:  220,
		BondEvery: 50,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.XSize, "xsize", c.XSize, "lattice size along x")
	fs.IntVar(&c.YSize, "ysize", c.YSize, "lattice size along y")
	fs.IntVar(&c.ZSize, "zsize", c.ZSize, "lattice size along z")
	fs.StringVar(&c.Init, "init", c.Init, "RNA sequence to seed along +x at the origin")
	fs.Float64Var(&c.Density, "density", c.Density, "probability of scattering a random monomer into each empty cell")
	fs.Int64Var(&c.Seed, "rnd", c.Seed, "RNG seed")

	fs.IntVar(&c.TotalMoves, "total-moves", c.TotalMoves, "fixed number of tryMove calls")
	fs.IntVar(&c.UnitMoves, "unit-moves", c.UnitMoves, "tryMove calls per unit in the arena, added to total-moves")
	fs.BoolVar(&c.Folds, "folds", c.Folds, "log the fold string at each period")
	fs.BoolVar(&c.Seqs, "seqs", c.Seqs, "log sequence frequencies at each period")
	fs.BoolVar(&c.Monochrome, "monochrome", c.Monochrome, "render fold strings without ANSI color")
	fs.IntVar(&c.Period, "period", c.Period, "moves between progress log lines")
	fs.Float64Var(&c.Temp, "temp", c.Temp, "override Params.Temp")

	fs.StringVar(&c.Load, "load", c.Load, "load a board from this JSON file instead of seeding one")
	fs.StringVar(&c.Save, "save", c.Save, "save the final board as JSON to this path")
	fs.StringVar(&c.JSON, "json", c.JSON, "alias for -save")
	fs.StringVar(&c.Bitmap, "bitmap", c.Bitmap, "write a base-colored PNG of the z=0 slice to this path")
	fs.StringVar(&c.CSV, "csv", c.CSV, "write a pair-frequency matrix CSV to this path")

	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (cmd/rnaview)")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "HUD panel width in pixels (cmd/rnaview)")
	fs.IntVar(&c.BondEvery, "bond-every", c.BondEvery, "call TryBond once every this many tryMove calls")
	fs.IntVar(&c.MovesPerSec, "moves-per-sec", c.MovesPerSec, "cmd/rnaview: cap simulation moves per real second, independent of frame rate (0 = uncapped)")
}

// TotalSteps returns total-moves + |unit|*unit-moves, per §6.
func (c *Config) TotalSteps(unitCount int) int {
	return c.TotalMoves + unitCount*c.UnitMoves
}
