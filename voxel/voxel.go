// Package voxel writes binvox voxel files for relief solids, for toolchains
// that consume voxel grids instead of triangle meshes.
package voxel

import (
	"fmt"
	"log"
	"math"

	"github.com/eyeoverthink/SignMaker3D-sub002/relief"
	"github.com/gmlewis/stldice/v4/binvox"
)

// Write voxelizes the relief solid at the given Z resolution (layers across
// the tallest column, including the base) and writes baseFilename.binvox.
func Write(baseFilename string, m *relief.Map, zLayers int) error {
	if m.W < 2 || m.H < 2 {
		return fmt.Errorf("height map %vx%v is too small to voxelize", m.W, m.H)
	}
	if zLayers < 1 {
		return fmt.Errorf("zLayers must be positive, got %v", zLayers)
	}

	var maxDepth float64
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if d := m.At(x, y); d > maxDepth {
				maxDepth = d
			}
		}
	}
	top := m.Base + maxDepth
	if top <= 0 {
		return fmt.Errorf("relief solid has no height")
	}

	b := binvox.New(m.W, m.H, zLayers, 0, 0, 0, top, false)

	// Column fill: every voxel below the local surface is solid.
	dz := top / float64(zLayers)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			h := m.Base + m.At(x, y)
			layers := int(math.Ceil(h / dz))
			if layers > zLayers {
				layers = zLayers
			}
			for z := 0; z < layers; z++ {
				b.Add(x, y, z)
			}
		}
	}

	filename := baseFilename + ".binvox"
	log.Printf("Writing: %v", filename)
	if err := b.Write(filename, 0, 0, 0, b.NX, b.NY, b.NZ); err != nil {
		return fmt.Errorf("Write: %v", err)
	}
	return nil
}
