/*
File    : lambda/reducer/stats.go
Author  : akashmaji946
*/
package reducer

import "fmt"

// Stats accumulates counters over the whole course of a Reduce call. Depth
// and Size are working values reset at the start of each normal-order
// pass; MaxDepth and MaxSize record their high-water marks across every
// pass, and Betas/Etas count every reduction rule applied.
type Stats struct {
	Betas    int
	Etas     int
	Depth    int
	MaxDepth int
	Size     int
	MaxSize  int
	reduced  bool
}

func (s *Stats) String() string {
	return fmt.Sprintf(
		"Stats:\n\tBeta reductions: %d\n\tEta reductions: %d\n\tMaximum depth: %d\n\tMaximum size: %d\n",
		s.Betas, s.Etas, s.MaxDepth, s.MaxSize,
	)
}
