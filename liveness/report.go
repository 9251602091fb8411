package liveness

import (
	"bytes"
	"io"

	"github.com/fatih/color"
)

// Header is the first line of a report, followed by the function name.
const Header = "LivenessAnalysis: "

// WriteTo writes the report of r to w:
//
//	LivenessAnalysis: <function>
//	----- <block> -----
//	UEVAR: <names>
//	VARKILL: <names>
//	LIVEOUT: <names>
//
// Blocks are in Function order, names are sorted and each is followed by a
// single space.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	return r.WriteReport(w, false)
}

// WriteReport is WriteTo with optionally coloured header and block banners.
func (r *Result) WriteReport(w io.Writer, colored bool) (int64, error) {
	header := color.New(color.Bold)
	banner := color.New(color.FgCyan)
	if colored {
		header.EnableColor()
		banner.EnableColor()
	} else {
		header.DisableColor()
		banner.DisableColor()
	}

	var buf bytes.Buffer
	buf.WriteString(header.Sprint(Header+r.Function) + "\n")
	for _, name := range r.Blocks {
		buf.WriteString(banner.Sprint("----- "+name+" -----") + "\n")
		writeSet(&buf, "UEVAR: ", r.UEVar[name])
		writeSet(&buf, "VARKILL: ", r.VarKill[name])
		writeSet(&buf, "LIVEOUT: ", r.LiveOut[name])
	}
	return buf.WriteTo(w)
}

func writeSet(buf *bytes.Buffer, label string, s VarSet) {
	buf.WriteString(label)
	for _, name := range s.Sorted() {
		buf.WriteString(name)
		buf.WriteByte(' ')
	}
	buf.WriteByte('\n')
}

func (r *Result) String() string {
	var buf bytes.Buffer
	r.WriteTo(&buf)
	return buf.String()
}
