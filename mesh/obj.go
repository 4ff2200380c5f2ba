package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"helios/hgl"
)

// Parse reads a Wavefront OBJ stream and returns its faces expanded into a
// triangle list. Only v and f records matter; faces with more than three
// corners are fan-triangulated. Vertex normals and texture coordinates are
// ignored.
func Parse(r io.Reader) ([]hgl.Vec3, error) {
	var positions []hgl.Vec3
	var out []hgl.Vec3

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: vertex needs 3 coordinates", line)
			}
			var c [3]float32
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", line, err)
				}
				c[i] = float32(f)
			}
			positions = append(positions, hgl.V3(c[0], c[1], c[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: face needs at least 3 corners", line)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, fld := range fields[1:] {
				i, err := faceIndex(fld, len(positions))
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", line, err)
				}
				idx = append(idx, i)
			}
			for i := 1; i+1 < len(idx); i++ {
				out = append(out, positions[idx[0]], positions[idx[i]], positions[idx[i+1]])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// faceIndex resolves one face corner ("7", "7/2", "7/2/5", "7//5", "-1") to
// a zero-based position index.
func faceIndex(field string, count int) (int, error) {
	if i := strings.IndexByte(field, '/'); i >= 0 {
		field = field[:i]
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = count + n + 1
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("face index %d out of range (have %d vertices)", n, count)
	}
	return n - 1, nil
}

// LoadFile parses an OBJ file from disk.
func LoadFile(path string) ([]hgl.Vec3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
