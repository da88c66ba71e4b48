package attributes

// VisibleKeys filters keys for serialization. A non-empty visible list is an
// absolute allow-list and hidden is ignored entirely; otherwise hidden acts
// as a deny-list. Marking a field visible exposes it even when it is also
// hidden.
func VisibleKeys(keys, hidden, visible []string) []string {
	out := make([]string, 0, len(keys))

	if len(visible) > 0 {
		allow := toSet(visible)
		for _, k := range keys {
			if _, ok := allow[k]; ok {
				out = append(out, k)
			}
		}
		return out
	}

	deny := toSet(hidden)
	for _, k := range keys {
		if _, ok := deny[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

func toSet(keys []string) map[string]struct{} {
	s := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}
