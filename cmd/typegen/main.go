// Command typegen generates the value type catalog for ir/types.
//
// It enumerates the void type, every scalar width class, and the named
// vector instantiations at 64, 128, 256, and 512 total bits, then
// writes them as hex-literal constants so the generated file has no
// initialization-order dependencies. Run through go:generate from the
// ir/types package directory.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"

	"go.uber.org/zap"
)

// family describes one scalar lane-type family. Codes are assigned
// consecutively within a family so width conversion stays arithmetic.
type family struct {
	prefix string
	doc    string
	widths []int
}

var families = []family{
	{prefix: "B", doc: "a boolean scalar", widths: []int{1, 8, 16, 32, 64}},
	{prefix: "I", doc: "a sign-agnostic integer scalar", widths: []int{8, 16, 32, 64}},
	{prefix: "F", doc: "an IEEE 754 floating point scalar", widths: []int{32, 64}},
}

// vectorBits are the total widths that get named vector constants.
var vectorBits = []int{64, 128, 256, 512}

const maxLanes = 256

type scalar struct {
	name string
	code int
	bits int
}

func main() {
	out := flag.String("out", "zz_generated.go", "Output file for the generated catalog")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush on exit

	src, count, err := generate()
	if err != nil {
		logger.Fatal("generate catalog", zap.Error(err))
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		logger.Fatal("write catalog", zap.String("path", *out), zap.Error(err))
	}
	logger.Info("wrote type catalog", zap.String("path", *out), zap.Int("types", count))
}

func generate() ([]byte, int, error) {
	scalars := enumerateScalars()

	var b bytes.Buffer
	b.WriteString("// Code generated by cmd/typegen. DO NOT EDIT.\n\n")
	b.WriteString("package types\n\n")
	b.WriteString("// Named value type constants. Scalars cover every supported width\n")
	b.WriteString("// class; vectors cover the common 64, 128, 256, and 512 bit SIMD widths\n")
	b.WriteString("// for each lane type.\n")
	b.WriteString("const (\n")
	b.WriteString("\t// Void is the absence of a value; instructions that produce no\n")
	b.WriteString("\t// result have type Void. It cannot be part of a vector.\n")
	b.WriteString("\tVoid Type = 0x00\n")

	count := 1
	var catalogRows []string
	catalogRows = append(catalogRows, "Void,")

	i := 0
	for _, f := range families {
		b.WriteString("\n")
		var row []string
		for range f.widths {
			s := scalars[i]
			i++
			fmt.Fprintf(&b, "\t// %s is %s occupying %d %s.\n", s.name, f.doc, s.bits, plural(s.bits))
			fmt.Fprintf(&b, "\t%s Type = %#04x\n", s.name, s.code)
			row = append(row, s.name+",")
			count++
		}
		catalogRows = append(catalogRows, joinRow(row))
	}

	for _, s := range scalars {
		var row []string
		wrote := false
		for _, total := range vectorBits {
			lanes := total / s.bits
			if lanes < 2 || lanes > maxLanes {
				continue
			}
			if !wrote {
				b.WriteString("\n")
				wrote = true
			}
			name := fmt.Sprintf("%sX%d", s.name, lanes)
			code := s.code | log2(lanes)<<4
			fmt.Fprintf(&b, "\t// %s is a SIMD vector with %d lanes of %s (%d bits).\n", name, lanes, s.name, total)
			fmt.Fprintf(&b, "\t%s Type = %#04x\n", name, code)
			row = append(row, name+",")
			count++
		}
		if wrote {
			catalogRows = append(catalogRows, joinRow(row))
		}
	}
	b.WriteString(")\n\n")

	b.WriteString("// catalog backs Catalog. Order: Void, scalars by family, then vectors\n")
	b.WriteString("// grouped by lane type with ascending lane counts.\n")
	b.WriteString("var catalog = []Type{\n")
	for _, row := range catalogRows {
		fmt.Fprintf(&b, "\t%s\n", row)
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, 0, fmt.Errorf("format source: %w", err)
	}
	return src, count, nil
}

// enumerateScalars assigns consecutive codes starting after Void.
func enumerateScalars() []scalar {
	var out []scalar
	code := 1
	for _, f := range families {
		for _, w := range f.widths {
			out = append(out, scalar{
				name: fmt.Sprintf("%s%d", f.prefix, w),
				code: code,
				bits: w,
			})
			code++
		}
	}
	return out
}

func log2(n int) int {
	l := 0
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}

func plural(bits int) string {
	if bits == 1 {
		return "bit"
	}
	return "bits"
}

func joinRow(names []string) string {
	row := ""
	for i, n := range names {
		if i > 0 {
			row += " "
		}
		row += n
	}
	return row
}
