package window

import "strings"

// Rendering grammar (stable, depended on by callers and tests):
//
//	{}          empty
//	{t}         singleton
//	[a,b]       bounded interval
//	[a,+oo[     no upper bound
//	]-oo,b]     no lower bound
//	]-oo,+oo[   everything
//
// and set pieces joined by "U".

// String renders the interval in the bracket grammar above.
func (i Interval[T]) String() string {
	switch {
	case i.IsEmpty():
		return "{}"
	case i.IsSingleton():
		return "{" + i.lower.String() + "}"
	case !i.IsLowBounded():
		if i.IsUpBounded() {
			return "]-oo," + i.upper.String() + "]"
		}
		return "]-oo,+oo["
	case !i.IsUpBounded():
		return "[" + i.lower.String() + ",+oo["
	default:
		return "[" + i.lower.String() + "," + i.upper.String() + "]"
	}
}

// String renders the set as its pieces joined by "U", or "{}" when empty.
func (s Set[T]) String() string {
	if len(s.spans) == 0 {
		return "{}"
	}
	var b strings.Builder
	for k, iv := range s.spans {
		if k > 0 {
			b.WriteByte('U')
		}
		b.WriteString(iv.String())
	}
	return b.String()
}
