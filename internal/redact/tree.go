package redact

// MaxDepth is the deepest nesting level Tree redacts. Values below it are
// returned unchanged.
const MaxDepth = 10

// Tree returns a redacted deep copy of value. Keys matching a built-in or
// extra pattern have their values replaced by Placeholder; everything else
// is copied, descending through maps and slices. value is never modified.
//
// Past MaxDepth the remaining sub-value is returned as is, unredacted. This
// bounds the walk on cyclic or pathologically deep input.
func Tree(value any, extra ...string) any {
	return redactTree(value, NewClassifier(extra...), 0)
}

func redactTree(value any, c *Classifier, depth int) any {
	if depth > MaxDepth {
		return value
	}
	switch v := value.(type) {
	case map[string]any:
		return redactMapping(v, c, depth)
	case Metadata:
		return Metadata(redactMapping(v, c, depth))
	case Schema:
		return Schema(redactMapping(v, c, depth))
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, s := range v {
			if c.Match(k) {
				out[k] = Placeholder
				continue
			}
			out[k] = s
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = redactTree(elem, c, depth+1)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(v))
		for i, elem := range v {
			if depth+1 > MaxDepth {
				out[i] = elem
				continue
			}
			out[i] = redactMapping(elem, c, depth+1)
		}
		return out
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	default:
		return value
	}
}

func redactMapping(m map[string]any, c *Classifier, depth int) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if c.Match(k) {
			out[k] = Placeholder
			continue
		}
		out[k] = redactTree(v, c, depth+1)
	}
	return out
}
