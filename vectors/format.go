package vectors

import (
	"fmt"
	"strings"
)

func (v *Vector) String() string {
	var b strings.Builder
	v.format(&b)
	return strings.TrimSuffix(b.String(), "\n")
}

func (v *Vector) format(b *strings.Builder) {
	if v.kind == KindNull {
		b.WriteString("NULL\n")
		return
	}
	n := v.Len()
	if n == 0 {
		fmt.Fprintf(b, "%s(0)\n", v.kind)
		return
	}

	elems := make([]string, n)
	for i := range n {
		elems[i] = formatElem(v, i)
	}

	if tsp := v.attrs.Tsp; tsp != nil {
		fmt.Fprintf(b, "Time Series:\nStart = %s\nEnd = %s\nFrequency = %s\n",
			formatDouble(tsp.Start),
			formatDouble(tsp.End),
			formatDouble(tsp.Frequency),
		)
	}

	switch {
	case len(v.attrs.Dim) == 2:
		formatMatrix(b, elems, v.attrs.Dim, v.attrs.DimNames)
	case v.attrs.Names != nil:
		formatNamed(b, elems, v.attrs.Names)
	default:
		b.WriteString("[1]")
		for _, e := range elems {
			b.WriteString(" ")
			b.WriteString(e)
		}
		b.WriteString("\n")
		if len(v.attrs.Dim) > 0 {
			fmt.Fprintf(b, "dim: %v\n", v.attrs.Dim)
		}
	}
}

func formatNamed(b *strings.Builder, elems []string, names []string) {
	var top, bottom []string
	for i, e := range elems {
		name := names[i]
		if name == NAString {
			name = "<NA>"
		}
		w := max(len(e), len(name))
		top = append(top, fmt.Sprintf("%*s", w, name))
		bottom = append(bottom, fmt.Sprintf("%*s", w, e))
	}
	b.WriteString(strings.Join(top, " "))
	b.WriteString("\n")
	b.WriteString(strings.Join(bottom, " "))
	b.WriteString("\n")
}

func formatMatrix(b *strings.Builder, elems []string, dim []int, dimNames [][]string) {
	nrow, ncol := dim[0], dim[1]
	var rowNames, colNames []string
	if len(dimNames) == 2 {
		rowNames, colNames = dimNames[0], dimNames[1]
	}
	rowLabel := func(i int) string {
		if rowNames != nil {
			return rowNames[i]
		}
		return fmt.Sprintf("[%d,]", i+1)
	}
	colLabel := func(j int) string {
		if colNames != nil {
			return colNames[j]
		}
		return fmt.Sprintf("[,%d]", j+1)
	}

	labelWidth := 0
	for i := range nrow {
		labelWidth = max(labelWidth, len(rowLabel(i)))
	}
	widths := make([]int, ncol)
	for j := range ncol {
		widths[j] = len(colLabel(j))
		for i := range nrow {
			widths[j] = max(widths[j], len(elems[i+j*nrow]))
		}
	}

	fmt.Fprintf(b, "%*s", labelWidth, "")
	for j := range ncol {
		fmt.Fprintf(b, " %*s", widths[j], colLabel(j))
	}
	b.WriteString("\n")
	for i := range nrow {
		fmt.Fprintf(b, "%-*s", labelWidth, rowLabel(i))
		for j := range ncol {
			fmt.Fprintf(b, " %*s", widths[j], elems[i+j*nrow])
		}
		b.WriteString("\n")
	}
}
