package logic

// RecycledLength returns the length of an element-wise result over operands of
// length n1 and n2, and whether the longer length is not a multiple of the shorter.
// An empty operand gives an empty result.
func RecycledLength(n1, n2 int) (n int, mismatch bool) {
	if n1 == 0 || n2 == 0 {
		return 0, false
	}
	if n1 > n2 {
		return n1, n1%n2 != 0
	}
	return n2, n2%n1 != 0
}

// recycle applies fn to the recycled pairs of xs and ys.
func recycle[T, R any](xs, ys []T, fn func(T, T) R) []R {
	n, _ := RecycledLength(len(xs), len(ys))
	ret := make([]R, n)
	n1, n2 := len(xs), len(ys)
	for i := range n {
		ret[i] = fn(xs[i%n1], ys[i%n2])
	}
	return ret
}
