// ABOUTME: Progress reporting for the rank command
// ABOUTME: Prints a line per annealing checkpoint showing step count and best loss so far

package main

import (
	"fmt"
	"time"
)

// progressReporter prints one line per annealer checkpoint to stdout,
// showing how many steps have run and how the best loss has moved since
// the last checkpoint.
type progressReporter struct {
	start     time.Time
	lastLoss  float64
	haveFirst bool
}

func newProgressReporter() *progressReporter {
	return &progressReporter{start: time.Now()}
}

// report is passed to ranking.RunWithProgress as its checkpoint callback.
func (p *progressReporter) report(step int, bestLoss float64) {
	elapsed := time.Since(p.start).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(step) / elapsed
	}

	if !p.haveFirst {
		fmt.Printf("step %d: loss %.4f (%.0f steps/s)\n", step, bestLoss, rate)
		p.lastLoss = bestLoss
		p.haveFirst = true
		return
	}

	fmt.Printf("step %d: loss %s (%.0f steps/s)\n",
		step, FormatMinimalPrecision(p.lastLoss, bestLoss), rate)
	p.lastLoss = bestLoss
}
