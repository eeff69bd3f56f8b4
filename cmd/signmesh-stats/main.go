// signmesh-stats prints triangle counts, bounds, and signed volume for
// generated STL files, as a quick manufacturability sanity check.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/fogleman/fauxgl"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatalf("usage: signmesh-stats file.stl [file.stl ...]")
	}

	var rows []string
	for _, arg := range flag.Args() {
		m, err := fauxgl.LoadSTL(arg)
		if err != nil {
			log.Fatalf("LoadSTL(%v): %v", arg, err)
		}

		box := m.BoundingBox()
		size := box.Max.Sub(box.Min)
		rows = append(rows, fmt.Sprintf("%v\t%v\t%.2fx%.2fx%.2f\t%.2f",
			arg, len(m.Triangles), size.X, size.Y, size.Z, volume(m)))
	}

	fmt.Println("file\ttriangles\tsize\tvolume")
	fmt.Println(strings.Join(rows, "\n"))
}

// volume sums signed tetrahedron volumes against the origin. The result is
// only meaningful for closed meshes with consistent winding; a negative or
// near-zero value for a solid part is itself a useful red flag.
func volume(m *fauxgl.Mesh) float64 {
	var v float64
	for _, t := range m.Triangles {
		p1, p2, p3 := t.V1.Position, t.V2.Position, t.V3.Position
		v += p1.Dot(p2.Cross(p3)) / 6
	}
	return v
}
