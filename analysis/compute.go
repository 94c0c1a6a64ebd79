package analysis

// Compute derives the conflict matrix, its boolean counterpart, and the
// raw/equivalent communication amounts from a transparent pass's
// recorded occupancy. Two communications only compete if their wire
// paths actually intersect; their pairwise conflict is the fraction of
// record i's own occupied time that overlaps record j's.
func Compute(records []CommunicationRecord) Result {
	n := len(records)
	conflict := NewDense(n, n)
	boolM := NewDense(n, n)

	pathSets := make([]map[string]bool, n)
	for i, r := range records {
		set := make(map[string]bool, len(r.PathKeys))
		for _, k := range r.PathKeys {
			set[k] = true
		}
		pathSets[i] = set
	}

	for i := 0; i < n; i++ {
		selfOccupy := sumDuration(records[i].Ranges)
		for j := 0; j < n; j++ {
			if i == j || !sharesAnyPath(pathSets[i], pathSets[j]) {
				continue
			}
			common := overlap(records[i].Ranges, records[j].Ranges)
			if selfOccupy > 0 {
				conflict.Set(i, j, common/selfOccupy)
			}
			if common > 0 {
				boolM.Set(i, j, 1)
			}
		}
	}

	var rAmount float64
	effective := make([]float64, n)
	for i, r := range records {
		tmp := float64(r.Amount) * float64(len(r.PathKeys))
		rAmount += tmp
		eTmp := tmp
		for j := 0; j < n; j++ {
			denom := 1 - 0.5*conflict.At(i, j)
			if denom <= 0 {
				continue
			}
			if v := tmp / denom; v > eTmp {
				eTmp = v
			}
		}
		effective[i] = eTmp
	}

	layerMax := make(map[int]float64)
	layerSeen := make(map[int]bool)
	for i, r := range records {
		if !layerSeen[r.LayerID] || effective[i] > layerMax[r.LayerID] {
			layerMax[r.LayerID] = effective[i]
			layerSeen[r.LayerID] = true
		}
	}
	var eAmount float64
	for _, v := range layerMax {
		eAmount += v
	}

	return Result{Conflict: conflict, Bool: boolM, RAmount: rAmount, EAmount: eAmount}
}

func sumDuration(ranges []Interval) float64 {
	var total float64
	for _, r := range ranges {
		total += r.End - r.Start
	}
	return total
}

func sharesAnyPath(a, b map[string]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}

// overlap sweeps two sorted, non-overlapping interval lists and sums the
// time both occupy simultaneously. It advances whichever interval ends
// earlier, matching how the two occupancy lists are actually produced
// (append-only, strictly increasing start time); an empty list yields no
// overlap.
func overlap(a, b []Interval) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var common float64
	i, j := 0, 0
	for {
		lo := maxF(a[i].Start, b[j].Start)
		hi := minF(a[i].End, b[j].End)
		if hi > lo {
			common += hi - lo
		}
		if a[i].End <= b[j].End {
			i++
			if i >= len(a) {
				break
			}
		} else {
			j++
			if j >= len(b) {
				break
			}
		}
	}
	return common
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
