package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/philipparndt/globesim/pkg/geometry"
)

// Format selects the STL encoding
type Format string

const (
	ASCII  Format = "ascii"
	Binary Format = "binary"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case ASCII, Binary:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown STL format %q (want ascii or binary)", name)
	}
}

// Save writes the model to filename in the given format
func Save(filename string, model *Model, format Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, model, format); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Write encodes the model to w
func Write(w io.Writer, model *Model, format Format) error {
	switch format {
	case ASCII:
		return writeASCII(w, model)
	case Binary:
		return writeBinary(w, model)
	default:
		return fmt.Errorf("unknown STL format %q", format)
	}
}

// writeASCII writes the "solid ... endsolid" text encoding
func writeASCII(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", model.Name)
	for _, t := range model.Triangles {
		fmt.Fprintf(bw, "  facet normal %e %e %e\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range []geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %e %e %e\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", model.Name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

// writeBinary writes the 80-byte header, facet count and 50-byte facets
func writeBinary(w io.Writer, model *Model) error {
	if uint64(len(model.Triangles)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles for binary STL: %d", len(model.Triangles))
	}

	bw := bufio.NewWriter(w)

	header := make([]byte, 80)
	copy(header, model.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, t := range model.Triangles {
		facet := struct {
			Normal, V1, V2, V3 [3]float32
			Attribute          uint16
		}{
			Normal: toFloat32(t.Normal),
			V1:     toFloat32(t.V1),
			V2:     toFloat32(t.V2),
			V3:     toFloat32(t.V3),
		}
		if err := binary.Write(bw, binary.LittleEndian, &facet); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write binary STL: %w", err)
	}
	return nil
}

func toFloat32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
