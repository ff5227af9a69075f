package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"rnalattice/internal/lattice"
)

// PairFrequencyMatrix accumulates, over the course of a run, how often
// arena index i was observed paired with arena index j.
type PairFrequencyMatrix struct {
	n      int
	counts [][]int
}

// NewPairFrequencyMatrix allocates a zeroed n by n accumulator.
func NewPairFrequencyMatrix(n int) *PairFrequencyMatrix {
	counts := make([][]int, n)
	for i := range counts {
		counts[i] = make([]int, n)
	}
	return &PairFrequencyMatrix{n: n, counts: counts}
}

// Observe records one snapshot's worth of index pairs (i<j).
func (m *PairFrequencyMatrix) Observe(pairs []lattice.IndexPair) {
	for _, p := range pairs {
		if p.I < 0 || p.I >= m.n || p.J < 0 || p.J >= m.n {
			continue
		}
		m.counts[p.I][p.J]++
		m.counts[p.J][p.I]++
	}
}

// Counts exposes the raw accumulator, e.g. for WritePairHeatmapPNG.
func (m *PairFrequencyMatrix) Counts() [][]int { return m.counts }

// WriteCSV writes the matrix as a plain numeric CSV with a leading header
// row/column of arena indices.
func (m *PairFrequencyMatrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, m.n+1)
	header[0] = ""
	for j := 0; j < m.n; j++ {
		header[j+1] = strconv.Itoa(j)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("render: write CSV header: %w", err)
	}
	for i, row := range m.counts {
		record := make([]string, m.n+1)
		record[0] = strconv.Itoa(i)
		for j, v := range row {
			record[j+1] = strconv.Itoa(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("render: write CSV row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
