// Package stl serializes triangles to the binary STL format.
//
// Two entry points are provided: Encode builds an in-memory buffer for parts
// that are handed to an archiving collaborator, and Client streams triangles
// straight to a file for very large meshes.
package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	headerSize = 80
	recordSize = 50
	bufSize    = 10000
)

// Tri is the 50-byte binary STL triangle record.
type Tri struct {
	// Normal plus three vertex triplets: [3]float32{x,y,z}
	N, V1, V2, V3 [3]float32
	_             uint16 // unused attribute byte count
}

// FromTriangle converts a mesh triangle to its STL record.
// NaN coordinates pass through untouched; the format has no way to reject them.
func FromTriangle(t mesh.Triangle) Tri {
	f := func(v [3]float64) [3]float32 {
		return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
	}
	return Tri{N: f(t.N), V1: f(t.V1), V2: f(t.V2), V3: f(t.V3)}
}

// Encode serializes tris to a complete binary STL buffer: an 80-byte header
// (name truncated or zero-padded), a little-endian uint32 triangle count, then
// one 50-byte record per triangle. The result is always
// 84 + 50*len(tris) bytes.
func Encode(name string, tris []mesh.Triangle) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+4+recordSize*len(tris)))

	var header [headerSize]byte
	copy(header[:], name)
	buf.Write(header[:])

	binary.Write(buf, binary.LittleEndian, uint32(len(tris)))
	for _, t := range tris {
		r := FromTriangle(t)
		binary.Write(buf, binary.LittleEndian, &r)
	}
	return buf.Bytes()
}

// Decode parses a binary STL buffer produced by Encode (or any conforming
// writer) back into triangles. Normals are taken from the records as-is.
func Decode(data []byte) ([]mesh.Triangle, error) {
	if len(data) < headerSize+4 {
		return nil, fmt.Errorf("buffer too short for STL header: %v bytes", len(data))
	}
	count := binary.LittleEndian.Uint32(data[headerSize:])
	want := headerSize + 4 + recordSize*int(count)
	if len(data) != want {
		return nil, fmt.Errorf("buffer is %v bytes, want %v for %v triangles", len(data), want, count)
	}

	tris := make([]mesh.Triangle, count)
	off := headerSize + 4
	vec := func(o int) mgl64.Vec3 {
		return mgl64.Vec3{
			float64(math.Float32frombits(binary.LittleEndian.Uint32(data[o:]))),
			float64(math.Float32frombits(binary.LittleEndian.Uint32(data[o+4:]))),
			float64(math.Float32frombits(binary.LittleEndian.Uint32(data[o+8:]))),
		}
	}
	for i := range tris {
		tris[i] = mesh.Triangle{
			N:  vec(off),
			V1: vec(off + 12),
			V2: vec(off + 24),
			V3: vec(off + 36),
		}
		off += recordSize
	}
	return tris, nil
}

// Client is a streaming binary STL file writer.
type Client struct {
	wg sync.WaitGroup // ensures file is closed
	ch chan Tri

	mu  sync.RWMutex
	err error
}

// New creates a new streaming binary STL file writer.
func New(filename string) (*Client, error) {
	out, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	// Write header; the count is back-patched on Close.
	header := struct {
		_ [headerSize]uint8
		_ uint32
	}{}
	if err := binary.Write(out, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("error writing header: %v", err)
	}

	c := &Client{ch: make(chan Tri, bufSize)}
	c.start(out)
	return c, nil
}

func (c *Client) start(out writeSeekCloser) {
	c.wg.Add(1)
	go func() {
		err := writer(out, c.ch)
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		c.wg.Done()
	}()
}

// Write writes a triangle to the STL file.
func (c *Client) Write(t *Tri) error {
	c.ch <- *t
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// WriteMesh writes all triangles of a mesh to the STL file.
func (c *Client) WriteMesh(tris []mesh.Triangle) error {
	for _, t := range tris {
		r := FromTriangle(t)
		if err := c.Write(&r); err != nil {
			return err
		}
	}
	return nil
}

// Close finalizes the STL file.
func (c *Client) Close() error {
	close(c.ch)
	c.wg.Wait()
	return c.err
}

type writeSeekCloser interface {
	io.Writer
	io.Seeker
	io.Closer
}

func writer(out writeSeekCloser, ch <-chan Tri) error {
	var count uint32
	for t := range ch {
		if err := binary.Write(out, binary.LittleEndian, &t); err != nil {
			return fmt.Errorf("write triangle %#v: %v", t, err)
		}
		count++
	}

	if _, err := out.Seek(headerSize, io.SeekStart); err != nil {
		return fmt.Errorf("seek: %v", err)
	}

	if err := binary.Write(out, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("write count %v: %v", count, err)
	}

	return out.Close()
}
