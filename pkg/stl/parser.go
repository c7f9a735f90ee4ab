package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/globesim/pkg/geometry"
)

const (
	binaryHeaderSize = 80
	binaryFacetSize  = 50
)

// Parse reads an STL file and returns a Model
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read decodes an ASCII or binary STL stream. A stream whose length matches
// the binary layout for its facet count is binary even if the header starts
// with "solid".
func Read(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL: %w", err)
	}

	if isBinary(data) {
		return parseBinary(data)
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCII(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unrecognized STL data (%d bytes)", len(data))
}

func isBinary(data []byte) bool {
	if len(data) < binaryHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	return uint64(len(data)) == binaryHeaderSize+4+uint64(count)*binaryFacetSize
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				v, err := parseVector(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("invalid facet normal: %w", err)
				}
				currentNormal = v
			}

		case "vertex":
			if len(fields) >= 4 {
				v, err := parseVector(fields[1:4])
				if err != nil {
					return nil, fmt.Errorf("invalid vertex: %w", err)
				}
				vertices = append(vertices, v)
			}

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// parseBinary parses a binary STL file whose size was already validated
func parseBinary(data []byte) (*Model, error) {
	model := NewModel(string(bytes.TrimRight(data[:binaryHeaderSize], "\x00")))

	reader := bytes.NewReader(data[binaryHeaderSize:])

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var facet struct {
			Normal, V1, V2, V3 [3]float32
			Attribute          uint16
		}
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		model.AddTriangle(geometry.NewTriangle(
			fromFloat32(facet.Normal),
			fromFloat32(facet.V1),
			fromFloat32(facet.V2),
			fromFloat32(facet.V3),
		))
	}

	return model, nil
}

func fromFloat32(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
