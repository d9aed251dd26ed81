package main

import (
	"cmp"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/polyspan"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Shape struct {
	ID   int32
	Kind uint8
}

type Circle struct {
	Shape
	Radius float64
}

type Polygon struct {
	Name   [16]byte
	Sides  uint16
	Shape
	Points [8][2]float32
}

// init routes logrus output to stdout for easier log capture.
func init() {
	logrus.SetOutput(os.Stdout)
}

func main() {
	n := flag.Int("n", 8, "number of elements per sample")
	format := flag.String("format", "yaml", "layout output format: yaml|text")
	memprofile := flag.String("memprofile", "", "write a heap profile of the walk to this file")
	verbose := flag.Bool("v", false, "log every visited element")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if *n < 0 {
		logrus.Fatalf("element count must not be negative: %d", *n)
	}

	circles := make([]Circle, *n)
	polygons := make([]Polygon, *n)
	for i := range *n {
		circles[i] = Circle{Shape: Shape{ID: int32(*n - i), Kind: 'c'}, Radius: float64(i) + 0.5}
		polygons[i] = Polygon{Sides: uint16(3 + i%5), Shape: Shape{ID: int32(i), Kind: 'p'}}
	}

	views := map[string]polyspan.Span[Shape]{
		"circles":  polyspan.Embedded(circles, func(c *Circle) *Shape { return &c.Shape }),
		"polygons": polyspan.Embedded(polygons, func(p *Polygon) *Shape { return &p.Shape }),
	}

	if *memprofile != "" {
		runtime.MemProfileRate = 1
	}
	for _, name := range []string{"circles", "polygons"} {
		s := views[name]
		var sum int64
		for i, sh := range s.All() {
			logrus.WithFields(logrus.Fields{"view": name, "index": i, "id": sh.ID, "kind": string(rune(sh.Kind))}).Debug("visit")
			sum += int64(sh.ID)
		}
		polyspan.SortFunc(s, func(a, b Shape) int { return cmp.Compare(a.ID, b.ID) })
		logrus.WithFields(logrus.Fields{
			"view":   name,
			"len":    s.Len(),
			"stride": s.ElementSize(),
			"sum":    sum,
			"sorted": polyspan.IsSortedFunc(s.Const(), func(a, b Shape) int { return cmp.Compare(a.ID, b.ID) }),
		}).Info("walked view")
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			logrus.Errorf("write heap profile: %v", err)
		}
		if err := f.Close(); err != nil {
			logrus.Errorf("close heap profile: %v", err)
		}
	}

	layouts := map[string]polyspan.Layout{
		"circles":  views["circles"].Layout(),
		"polygons": views["polygons"].Layout(),
	}
	switch *format {
	case "yaml":
		out, err := yaml.Marshal(layouts)
		if err != nil {
			logrus.Fatalf("marshal layouts: %v", err)
		}
		if _, err := os.Stdout.Write(out); err != nil {
			logrus.Fatalf("write layouts: %v", err)
		}
	case "text":
		for _, name := range []string{"circles", "polygons"} {
			l := layouts[name]
			fmt.Printf("%-9s %s len=%d elem=%d stride=%d padding=%d\n", name, l.Type, l.Len, l.ElemSize, l.Stride, l.Padding())
		}
	default:
		logrus.Fatalf("unknown format %q", *format)
	}
}
