package forecast

import (
	"github.com/montanaflynn/stats"
)

const markovStates = 4

// markovChain models transitions between the quartile bins of a series
type markovChain struct {
	bins       [markovStates - 1]float64
	states     []int
	transition [markovStates][markovStates]float64
	mean       [markovStates]float64
}

func newMarkovChain(series []float64) (*markovChain, error) {
	m := &markovChain{}
	for i, p := range []float64{25, 50, 75} {
		q, err := stats.Percentile(series, p)
		if err != nil {
			return nil, err
		}
		m.bins[i] = q
	}

	var sums [markovStates]float64
	var counts [markovStates]int
	m.states = make([]int, len(series))
	for t, v := range series {
		s := m.state(v)
		m.states[t] = s
		sums[s] += v
		counts[s]++
	}

	overall, err := stats.Mean(series)
	if err != nil {
		return nil, err
	}
	for s := range m.mean {
		m.mean[s] = overall
		if counts[s] > 0 {
			m.mean[s] = sums[s] / float64(counts[s])
		}
	}

	for t := 1; t < len(m.states); t++ {
		m.transition[m.states[t-1]][m.states[t]]++
	}
	for s := range m.transition {
		var total float64
		for _, c := range m.transition[s] {
			total += c
		}
		if total == 0 {
			continue
		}
		for j := range m.transition[s] {
			m.transition[s][j] /= total
		}
	}
	return m, nil
}

// state returns the number of bin edges at or below v
func (m *markovChain) state(v float64) int {
	s := 0
	for _, edge := range m.bins {
		if v >= edge {
			s++
		}
	}
	return s
}

// next returns the most likely successor of s, lowest state on ties.
// A state that was never left stays put.
func (m *markovChain) next(s int) int {
	best, bestP := s, 0.0
	for j, p := range m.transition[s] {
		if p > bestP {
			best, bestP = j, p
		}
	}
	return best
}
