package kothmg

import "sync"

// Perft counts leaf nodes (move sequences) from the position for a given depth.
func Perft(s GameState, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	succ, err := LegalStates(s)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(succ)), nil
	}
	var nodes uint64
	for _, st := range succ {
		n, err := Perft(st, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// PerftDivide returns a map from each legal root move (UCI) to the number of leaf
// nodes reachable from that move at the given depth. Useful for debugging.
func PerftDivide(s GameState, depth int) (map[string]uint64, error) {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result, nil
	}
	succ, err := LegalStates(s)
	if err != nil {
		return nil, err
	}
	for _, st := range succ {
		n, err := Perft(st, depth-1)
		if err != nil {
			return nil, err
		}
		result[st.lastMove.String()] = n
	}
	return result, nil
}

// PerftParallel splits the root successors over 'workers' goroutines. States are
// values and the tables are read-only, so the workers share nothing mutable.
func PerftParallel(s GameState, depth, workers int) (uint64, error) {
	if depth <= 1 || workers <= 1 {
		return Perft(s, depth)
	}
	succ, err := LegalStates(s)
	if err != nil {
		return 0, err
	}

	jobs := make(chan GameState)
	counts := make([]uint64, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for st := range jobs {
				if errs[w] != nil {
					continue
				}
				n, err := Perft(st, depth-1)
				counts[w] += n
				errs[w] = err
			}
		}(w)
	}
	for _, st := range succ {
		jobs <- st
	}
	close(jobs)
	wg.Wait()

	var total uint64
	for w := range counts {
		if errs[w] != nil {
			return 0, errs[w]
		}
		total += counts[w]
	}
	return total, nil
}
