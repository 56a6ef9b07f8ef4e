package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gobound/pkg/geometry"
)

const (
	headerSize = 80
	recordSize = 50
)

// ErrMalformed is returned for STL data that cannot be decoded
var ErrMalformed = errors.New("malformed stl")

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return ParseBytes(data)
}

// ParseReader reads a whole STL stream and decodes it
func ParseReader(reader io.Reader) (*Model, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read stl: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes decodes ASCII or binary STL data.
// Binary files whose header happens to start with "solid" are recognised by
// their exact length.
func ParseBytes(data []byte) (*Model, error) {
	if isBinary(data) {
		return parseBinary(data)
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCII(bytes.NewReader(data))
	}
	return parseBinary(data)
}

func isBinary(data []byte) bool {
	if len(data) < headerSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[headerSize:])
	return uint64(len(data)) == headerSize+4+uint64(count)*recordSize
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3
	line := 0

	for scanner.Scan() {
		line++
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
			if len(fields) < 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("%w: line %d: expected facet normal", ErrMalformed, line)
			}
			n, err := parseTriple(fields[2:5])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
			}
			currentNormal = n

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs three coordinates", ErrMalformed, line)
			}
			v, err := parseTriple(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("%w: line %d: facet has %d vertices", ErrMalformed, line, len(vertices))
			}
			model.AddTriangle(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseTriple(fields []string) (geometry.Vector3, error) {
	var v [3]float64
	for i, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		v[i] = f
	}
	return geometry.NewVector3(v[0], v[1], v[2]), nil
}

// parseBinary parses a binary STL file
func parseBinary(data []byte) (*Model, error) {
	if len(data) < headerSize+4 {
		return nil, fmt.Errorf("%w: %d bytes is too short for a binary header", ErrMalformed, len(data))
	}

	model := NewModel(strings.TrimSpace(string(bytes.TrimRight(data[:headerSize], "\x00"))))

	count := binary.LittleEndian.Uint32(data[headerSize:])
	body := data[headerSize+4:]
	if uint64(len(body)) < uint64(count)*recordSize {
		return nil, fmt.Errorf("%w: header announces %d triangles, data holds %d", ErrMalformed, count, len(body)/recordSize)
	}

	for i := uint32(0); i < count; i++ {
		record := body[int(i)*recordSize:]
		// normal, three vertices, then a two byte attribute count
		model.AddTriangle(geometry.NewTriangle(
			readVector(record[0:]),
			readVector(record[12:]),
			readVector(record[24:]),
			readVector(record[36:]),
		))
	}

	return model, nil
}

func readVector(b []byte) geometry.Vector3 {
	return geometry.NewVector3(
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
	)
}

// WriteBinary encodes the model as binary STL. Coordinates are narrowed to
// float32 as the format requires.
func WriteBinary(w io.Writer, model *Model) error {
	buf := make([]byte, headerSize+4, headerSize+4+recordSize*len(model.Triangles))
	copy(buf[:headerSize], model.Name)
	binary.LittleEndian.PutUint32(buf[headerSize:], uint32(len(model.Triangles)))

	var record [recordSize]byte
	for _, triangle := range model.Triangles {
		for i, v := range []geometry.Vector3{triangle.Normal, triangle.V1, triangle.V2, triangle.V3} {
			binary.LittleEndian.PutUint32(record[i*12:], math.Float32bits(float32(v.X)))
			binary.LittleEndian.PutUint32(record[i*12+4:], math.Float32bits(float32(v.Y)))
			binary.LittleEndian.PutUint32(record[i*12+8:], math.Float32bits(float32(v.Z)))
		}
		buf = append(buf, record[:]...)
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write stl: %w", err)
	}
	return nil
}
