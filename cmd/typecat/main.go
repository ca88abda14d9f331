// Command typecat inspects the IR value type catalog.
//
// By default it prints every named type with its text form, debug form,
// and derived properties. With -i it opens an interactive browser.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/cinderc/cinder/ir/types"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive browser")
		scalarsOnly = flag.Bool("scalars", false, "List scalar types only")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	list(*scalarsOnly)
}

func list(scalarsOnly bool) {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	header := func(s string) string {
		if styled {
			return headerStyle.Render(s)
		}
		return s
	}

	fmt.Println(header(fmt.Sprintf("%-10s %-14s %-8s %6s %6s", "TYPE", "DEBUG", "LANE", "LANES", "BITS")))
	for _, t := range types.Catalog() {
		if scalarsOnly && !t.IsScalar() {
			continue
		}
		fmt.Printf("%-10s %-14s %-8s %6d %6d\n",
			t.String(), t.GoString(), t.LaneType().String(), t.LaneCount(), t.Bits())
	}
}

// describe renders one type's full property sheet, shared by the plain
// and interactive views.
func describe(t types.Type) string {
	opt := func(v types.Type, ok bool) string {
		if !ok {
			return "-"
		}
		return v.String()
	}

	var b strings.Builder
	row := func(k, v string) {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", k, v))
	}
	row("text", t.String())
	row("debug", t.GoString())
	row("code", fmt.Sprintf("0x%02x", uint8(t)))
	row("lane type", t.LaneType().String())
	row("lane bits", strconv.Itoa(t.LaneBits()))
	row("lane count", strconv.Itoa(t.LaneCount()))
	row("total bits", strconv.Itoa(t.Bits()))
	row("scalar", strconv.FormatBool(t.IsScalar()))

	half, hok := t.HalfWidth()
	row("half width", opt(half, hok))
	double, dok := t.DoubleWidth()
	row("double width", opt(double, dok))
	hv, vok := t.HalfVector()
	row("half vector", opt(hv, vok))
	by2, bok := t.By(2)
	row("by 2", opt(by2, bok))
	row("as bool", t.AsBool().String())
	row("as bool pedantic", t.AsBoolPedantic().String())
	return b.String()
}

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4"))
