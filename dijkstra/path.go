package dijkstra

import "fmt"

// PathTo rebuilds the source→target vertex sequence from a predecessor map
// returned with WithReturnPath. The source is the only vertex allowed to
// have no predecessor; if the walk from target ends anywhere else, target
// was not reached and ErrNoPath is returned.
//
// Complexity: O(path length).
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if target == source {
		return []string{source}, nil
	}
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, target)
	}

	path := []string{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoPath, target)
		}
		path = append(path, p)
		cur = p
		// A predecessor chain longer than the map means a cycle.
		if len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: %q (cycle in predecessors)", ErrNoPath, target)
		}
	}

	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
