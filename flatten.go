package vecpath

// Flatten concatenates the commands of all subpaths in order.
// Edit addressing indexes into this flattened command stream.
func Flatten(subPaths []SubPath) []Command {
	n := 0
	for _, sp := range subPaths {
		n += len(sp)
	}
	out := make([]Command, 0, n)
	for _, sp := range subPaths {
		out = append(out, sp...)
	}
	return out
}

// Regroup re-splits a flat command stream into subpaths at each MoveTo.
// Empty subpaths are removed, and a trailing command run with no MoveTo
// of its own stays merged with the previous subpath. A dangling head with
// no MoveTo at all is kept as its own subpath: there is nothing to merge
// it into, and the geometry kernel rejects it downstream.
//
// Regroup never fails; indices are positional, nothing is renumbered.
func Regroup(commands []Command) []SubPath {
	var out []SubPath
	var current SubPath
	for _, c := range commands {
		if _, ok := c.(MoveTo); ok {
			if len(current) > 0 {
				out = append(out, current)
			}
			current = SubPath{c}
			continue
		}
		current = append(current, c)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}
