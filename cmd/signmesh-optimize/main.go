// signmesh-optimize simplifies a generated STL file so it is as close to
// -max bytes as possible without exceeding it, by binary-searching the
// simplification factor.
package main

import (
	"flag"
	"log"

	"github.com/fogleman/simplify"
)

const (
	recordSize = 50
	headerSize = 84
	rounds     = 12
)

var (
	maxSize = flag.Int64("max", 50000000, "Maximum STL file size in bytes")
	out     = flag.String("o", "", "Output filename (default: overwrite input)")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: signmesh-optimize [-max bytes] [-o out.stl] in.stl")
	}
	inFile := flag.Arg(0)
	outFile := *out
	if outFile == "" {
		outFile = inFile
	}

	m, err := simplify.LoadBinarySTL(inFile)
	check("LoadBinarySTL: %v", err)

	size := stlSize(len(m.Triangles))
	log.Printf("%v: %v triangles (%v bytes)", inFile, len(m.Triangles), size)
	if size <= *maxSize {
		log.Printf("Already within %v bytes, copying through.", *maxSize)
		check("SaveBinarySTL: %v", m.SaveBinarySTL(outFile))
		return
	}

	// The largest factor whose output still fits.
	lo, hi := 0.0, 1.0
	best := m.Simplify(lo)
	for i := 0; i < rounds; i++ {
		factor := (lo + hi) / 2
		s := m.Simplify(factor)
		size := stlSize(len(s.Triangles))
		log.Printf("factor=%.5f: %v triangles (%v bytes)", factor, len(s.Triangles), size)
		if size <= *maxSize {
			best = s
			lo = factor
		} else {
			hi = factor
		}
	}

	log.Printf("Writing: %v (%v triangles)", outFile, len(best.Triangles))
	check("SaveBinarySTL: %v", best.SaveBinarySTL(outFile))
}

func stlSize(triangles int) int64 {
	return headerSize + recordSize*int64(triangles)
}

func check(fmtStr string, args ...interface{}) {
	err := args[len(args)-1]
	if err != nil {
		log.Fatalf(fmtStr, args...)
	}
}
