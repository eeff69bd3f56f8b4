// signmesh generates printable STL parts from sign job files.
//
// A job file is JSON holding 2D paths (with closed flags), an optional
// height grid, and a flat settings record. Each part is written as its own
// STL file, or all parts are packaged into a single ZIP with -zip.
//
// By default, signmesh validates job files only. To generate output, at
// least one of -stl, -zip, or -binvox must be supplied.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
	"github.com/eyeoverthink/SignMaker3D-sub002/sign"
	"github.com/eyeoverthink/SignMaker3D-sub002/stl"
	"github.com/eyeoverthink/SignMaker3D-sub002/voxel"
	"github.com/eyeoverthink/SignMaker3D-sub002/zipper"
)

var (
	writeSTL    = flag.Bool("stl", false, "Write one STL file per part")
	writeZip    = flag.Bool("zip", false, "Write all parts into one ZIP file per job")
	writeBinvox = flag.Bool("binvox", false, "Write a binvox voxelization of the relief solid")

	outDir  = flag.String("out", ".", "Output directory")
	zLayers = flag.Int("layers", 64, "Voxel layers for -binvox")
	check   = flag.Bool("check", false, "Run an edge-pairing check on generated parts and log defects")
)

func main() {
	flag.Parse()

	if !*writeSTL && !*writeZip && !*writeBinvox {
		log.Printf("-stl, -zip, or -binvox must be supplied to generate output. Validating job files only.")
	}

	for _, arg := range flag.Args() {
		if !strings.HasSuffix(arg, ".json") {
			log.Printf("Skipping non-job file %q", arg)
			continue
		}

		log.Printf("Processing job %q...", arg)
		buf, err := os.ReadFile(arg)
		checkErr("ReadFile: %v", err)

		job, err := sign.ParseJob(buf)
		checkErr("%v: %v", arg, err)

		parts, err := generate(job)
		if err != nil && len(parts) == 0 {
			log.Fatalf("%v: %v", arg, err)
		}
		if err != nil {
			log.Printf("%v: %v (packaging the %v parts that succeeded)", arg, err, len(parts))
		}
		log.Printf("Generated %v parts", len(parts))

		if *check {
			runCheck(parts)
		}

		if *writeSTL {
			for _, part := range parts {
				name := filepath.Join(*outDir, part.Filename)
				log.Printf("Writing: %v", name)
				w, err := stl.New(name)
				checkErr("stl.New: %v", err)
				checkErr("WriteMesh: %v", w.WriteMesh(part.Triangles))
				checkErr("Close: %v", w.Close())
			}
		}

		if *writeZip {
			name := filepath.Join(*outDir, job.Name+".zip")
			log.Printf("Writing: %v", name)
			checkErr("zipper.Write: %v", zipper.Write(name, parts))
		}

		if *writeBinvox && job.Relief != nil {
			base := filepath.Join(*outDir, job.Name)
			checkErr("voxel.Write: %v", voxel.Write(base, job.Relief, *zLayers))
		}
	}

	log.Println("Done.")
}

func generate(job *sign.Job) ([]sign.ExportedPart, error) {
	parts, err := sign.GeneratePathParts(job.Name, job.Paths, job.Settings)
	if err != nil {
		return parts, err
	}
	if job.Relief != nil {
		reliefParts, err := sign.GenerateReliefParts(job.Name, job.Relief, job.Settings)
		parts = append(parts, reliefParts...)
		if err != nil {
			return parts, err
		}
	}
	return parts, nil
}

func runCheck(parts []sign.ExportedPart) {
	for _, part := range parts {
		tris, err := stl.Decode(part.Content)
		if err != nil {
			log.Printf("%v: decode: %v", part.Filename, err)
			continue
		}
		defects := mesh.Check(tris)
		if len(defects) == 0 {
			log.Printf("%v: %v triangles, edge pairing OK", part.Filename, len(tris))
			continue
		}
		log.Printf("%v: %v triangles, %v unpaired edges", part.Filename, len(tris), len(defects))
	}
}

func checkErr(fmtStr string, args ...interface{}) {
	err := args[len(args)-1]
	if err != nil {
		log.Fatalf(fmtStr, args...)
	}
}
