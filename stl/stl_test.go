package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/eyeoverthink/SignMaker3D-sub002/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

func TestEncodeSize(t *testing.T) {
	tri := mesh.NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})

	tests := []struct {
		name string
		tris []mesh.Triangle
	}{
		{name: "no triangles"},
		{name: "one triangle", tris: []mesh.Triangle{tri}},
		{name: "three triangles", tris: []mesh.Triangle{tri, tri, tri}},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			buf := Encode("test", tt.tris)
			if want := 84 + 50*len(tt.tris); len(buf) != want {
				t.Errorf("buffer size got %v, want %v", len(buf), want)
			}
			count := binary.LittleEndian.Uint32(buf[80:])
			if int(count) != len(tt.tris) {
				t.Errorf("header count got %v, want %v", count, len(tt.tris))
			}
		})
	}
}

func TestEncodeHeader(t *testing.T) {
	buf := Encode("hello", nil)
	if got := string(buf[:5]); got != "hello" {
		t.Errorf("header prefix got %q, want %q", got, "hello")
	}
	if buf[5] != 0 {
		t.Errorf("header not zero padded after name")
	}

	long := bytes.Repeat([]byte{'x'}, 200)
	buf = Encode(string(long), nil)
	if len(buf) != 84 {
		t.Errorf("long header buffer size got %v, want 84", len(buf))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tris := []mesh.Triangle{
		mesh.NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}),
		mesh.NewTriangle(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 1}, mgl64.Vec3{1, 0, 1}),
	}
	got, err := Decode(Encode("round trip", tris))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != len(tris) {
		t.Fatalf("decoded %v triangles, want %v", len(got), len(tris))
	}
	for i := range tris {
		if got[i].V1 != tris[i].V1 || got[i].V2 != tris[i].V2 || got[i].V3 != tris[i].V3 {
			t.Errorf("triangle %v: got %+v, want %+v", i, got[i], tris[i])
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(make([]byte, 10)); err == nil {
		t.Errorf("short buffer: expected error")
	}

	buf := Encode("x", nil)
	if _, err := Decode(append(buf, 0)); err == nil {
		t.Errorf("trailing bytes: expected error")
	}
}

func TestWriter(t *testing.T) {
	tri := FromTriangle(mesh.NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}))

	tests := []struct {
		name string
		tris []Tri
	}{
		{
			name: "no triangles",
		},
		{
			name: "two triangles",
			tris: []Tri{tri, tri},
		},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			out := &fakeFile{}
			ch := make(chan Tri, bufSize)
			c := &Client{ch: ch}
			c.start(out)

			for i, tri := range tt.tris {
				if err := c.Write(&tri); err != nil {
					t.Fatalf("c.Write: i=%v, %v", i, err)
				}
			}
			if err := c.Close(); err != nil {
				t.Fatalf("c.Close: %v", err)
			}

			if out.closes != 1 {
				t.Errorf("expected 1 close, got %v", out.closes)
			}
			if out.seeks != 1 {
				t.Errorf("expected 1 seek, got %v", out.seeks)
			}
			if out.writes != len(tt.tris)+1 { // +1 for the final count
				t.Errorf("expected %v writes, got %v", len(tt.tris)+1, out.writes)
			}
		})
	}
}

func TestWriterMatchesEncode(t *testing.T) {
	// The streaming writer and Encode must produce identical bytes for the
	// same triangles (modulo the header name, which the writer leaves blank).
	tris := []mesh.Triangle{
		mesh.NewTriangle(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}),
		mesh.NewTriangle(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 1}, mgl64.Vec3{1, 0, 1}),
	}

	// Pre-seed the 84 header bytes New would have written before streaming.
	out := &memFile{data: make([]byte, headerSize+4), off: headerSize + 4}
	c := &Client{ch: make(chan Tri, bufSize)}
	c.start(out)
	if err := c.WriteMesh(tris); err != nil {
		t.Fatalf("WriteMesh: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	want := Encode("", tris)
	if !bytes.Equal(out.data, want) {
		t.Errorf("streamed %v bytes != encoded %v bytes", len(out.data), len(want))
	}
	if !out.closed {
		t.Error("Close did not close the file")
	}
}

// memFile is an in-memory writeSeekCloser for byte-level writer tests.
type memFile struct {
	data   []byte
	off    int
	closed bool
}

func (f *memFile) Write(p []byte) (int, error) {
	if end := f.off + len(p); end > len(f.data) {
		f.data = append(f.data, make([]byte, end-len(f.data))...)
	}
	copy(f.data[f.off:], p)
	f.off += len(p)
	return len(p), nil
}

func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	f.off = int(offset)
	return offset, nil
}

func (f *memFile) Close() error {
	f.closed = true
	return nil
}

type fakeFile struct {
	closes int
	seeks  int
	writes int
}

func (f *fakeFile) Close() error {
	f.closes++
	return nil
}

func (f *fakeFile) Seek(offset int64, whence int) (int64, error) {
	f.seeks++
	return 0, nil
}

func (f *fakeFile) Write(p []byte) (n int, err error) {
	f.writes++
	return 0, nil
}
