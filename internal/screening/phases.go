package screening

// Phase is one weighted slice of the overall analysis progress.
type Phase struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Progress int    `json:"progress"`
	Max      int    `json:"max"`
}

// Phases splits analysis progress p into extraction (0-40), matching
// (0-40) and compatibility scoring (0-20). The parts always sum to the
// clamped p.
func Phases(p int) []Phase {
	p = clamp(p, 0, 100)
	return []Phase{
		{Name: "extract", Label: "Extracting skills and experience", Progress: clamp(p, 0, 40), Max: 40},
		{Name: "match", Label: "Finding matching jobs", Progress: clamp(p-40, 0, 40), Max: 40},
		{Name: "compatibility", Label: "Computing compatibility scores", Progress: clamp(p-80, 0, 20), Max: 20},
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
