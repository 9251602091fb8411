package ssa

import "io"

// WriteTo writes Functions declared in the built package to w in human
// readable SSA IR instruction format, in source order.
func (info *Info) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, f := range info.SrcFuncs() {
		written, err := f.WriteTo(w)
		n += written
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
