// pkg/installer/dedup.go
package installer

// RemoveDuplicates collapses specs whose names map to the same key. The
// first occurrence keeps its spelling and options; later duplicates are
// dropped. A nil key compares names as-is.
func RemoveDuplicates(specs []PackageSpec, key func(string) string) []PackageSpec {
	seen := make(map[string]struct{}, len(specs))
	out := make([]PackageSpec, 0, len(specs))
	for _, s := range specs {
		k := s.Name
		if key != nil {
			k = key(s.Name)
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

// FilterFound returns names whose key is in found, preserving order
// and dropping repeats. key maps a candidate to its lookup form; nil
// means identity.
func FilterFound(names []string, found map[string]struct{}, key func(string) string) []string {
	var out []string
	emitted := make(map[string]struct{}, len(names))
	for _, name := range names {
		k := name
		if key != nil {
			k = key(name)
		}
		if _, ok := found[k]; !ok {
			continue
		}
		if _, dup := emitted[name]; dup {
			continue
		}
		emitted[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
