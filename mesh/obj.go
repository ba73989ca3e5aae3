// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package mesh

// obj.go decodes a Wavefront OBJ text stream. It recognizes v, vt, f (vn is
// read and discarded). Polygonal faces are fan-triangulated. This is not a
// full OBJ reader: groups, materials, and smoothing directives are ignored.
//    https://en.wikipedia.org/wiki/Wavefront_.obj_file#File_format

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/galvanized/seamrepair/math/lin"
)

// Parse reads an OBJ stream and returns the decoded mesh. r is expected to
// be opened and closed by the caller.
func Parse(r io.Reader) (*Mesh, error) {
	var positions []lin.V3
	var uvs []lin.V2
	var triangles []Triangle

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	missingUVLine := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)
		switch tokens[0] {
		case "v":
			p, err := parsePosition(tokens[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vt":
			uv, err := parseUV(tokens[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			uvs = append(uvs, uv)
		case "f":
			tris, err := parseFace(tokens[1:], len(positions), len(uvs))
			if errors.Is(err, ErrFaceMissingUV) {
				// Reported once the whole stream is read, so a file with no
				// vt data at all fails with ErrMissingUVs instead.
				if missingUVLine == 0 {
					missingUVLine = lineNo
				}
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			triangles = append(triangles, tris...)
		default:
			// vn, o, g, s, mtllib, usemtl and anything else: ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}

	if len(uvs) == 0 {
		return nil, ErrMissingUVs
	}
	if missingUVLine > 0 {
		return nil, fmt.Errorf("mesh: line %d: %w", missingUVLine, ErrFaceMissingUV)
	}
	if len(triangles) == 0 {
		return nil, ErrNoFaces
	}
	return &Mesh{Positions: positions, UVs: uvs, Triangles: triangles}, nil
}

func parsePosition(fields []string) (lin.V3, error) {
	if len(fields) < 3 {
		return lin.V3{}, fmt.Errorf("bad vertex, want 3 coordinates")
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return lin.V3{}, fmt.Errorf("bad vertex x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return lin.V3{}, fmt.Errorf("bad vertex y: %w", err)
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return lin.V3{}, fmt.Errorf("bad vertex z: %w", err)
	}
	return *(&lin.V3{}).SetS(x, y, z), nil
}

func parseUV(fields []string) (lin.V2, error) {
	if len(fields) < 2 {
		return lin.V2{}, fmt.Errorf("bad texcoord, want at least 2 components")
	}
	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return lin.V2{}, fmt.Errorf("bad texcoord u: %w", err)
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return lin.V2{}, fmt.Errorf("bad texcoord v: %w", err)
	}
	// A third "w" component is legal but unused by 2D texturing; discarded.
	return *(&lin.V2{}).SetS(u, v), nil
}

// parseFace fan-triangulates a polygonal face (corners 0,i,i+1) and
// resolves each corner's v and vt indices relative to nv/nvt positions and
// UVs read so far.
func parseFace(fields []string, nv, nvt int) ([]Triangle, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 corners, got %d", len(fields))
	}
	vs := make([]int, len(fields))
	vts := make([]int, len(fields))
	for i, tok := range fields {
		v, vt, err := parseCorner(tok, nv, nvt)
		if err != nil {
			return nil, err
		}
		vs[i], vts[i] = v, vt
	}
	hasUV := false
	for _, vt := range vts {
		if vt >= 0 {
			hasUV = true
		}
	}
	if !hasUV {
		return nil, ErrFaceMissingUV
	}

	var tris []Triangle
	for i := 1; i < len(fields)-1; i++ {
		tri := Triangle{
			V:  [3]int{vs[0], vs[i], vs[i+1]},
			VT: [3]int{vts[0], vts[i], vts[i+1]},
		}
		tris = append(tris, tri)
	}
	return tris, nil
}

// parseCorner splits a "v", "v/vt", "v//vn", or "v/vt/vn" token into 0-based
// position and UV indices. A UV index is -1 when absent. Negative OBJ
// indices are relative to the current vertex/UV counts.
func parseCorner(tok string, nv, nvt int) (v, vt int, err error) {
	parts := strings.Split(tok, "/")
	vi, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad face index %q: %w", tok, err)
	}
	v = resolveIndex(vi, nv)

	vt = -1
	if len(parts) >= 2 && parts[1] != "" {
		vti, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("bad face texcoord index %q: %w", tok, err)
		}
		vt = resolveIndex(vti, nvt)
	}
	return v, vt, nil
}

// resolveIndex converts a 1-based OBJ index (or a negative, count-relative
// index) to a 0-based index.
func resolveIndex(i, count int) int {
	if i < 0 {
		return count + i
	}
	return i - 1
}
