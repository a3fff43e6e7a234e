package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed assets/lines.wgsl
var linesShaderBody string

// lineVertexSize is the packed size of a LineVertex: vec3 position + vec4 color.
const lineVertexSize = 28

// pivotMarkerVertexCount is the number of vertices written by PivotMarkerVertices.
const pivotMarkerVertexCount = 6

var (
	gridColor      = [4]float32{0.35, 0.35, 0.35, 1}
	gridMajorColor = [4]float32{0.5, 0.5, 0.5, 1}
	axisXColor     = [4]float32{0.9, 0.2, 0.2, 1}
	axisYColor     = [4]float32{0.2, 0.9, 0.2, 1}
	axisZColor     = [4]float32{0.2, 0.4, 0.9, 1}
	pivotColor     = [4]float32{1, 0.85, 0.1, 1}
)

// LineVertex is one end of a line segment.
type LineVertex struct {
	Position [3]float32
	Color    [4]float32
}

// newLinesPipeline describes the line-list pipeline shared by the grid and the pivot marker.
func newLinesPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline("Lines", camera.GPUCameraUniformSource+"\n"+linesShaderBody,
		pipeline.WithTopology(wgpu.PrimitiveTopologyLineList),
		pipeline.WithVertexLayout(lineVertexSize,
			wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1},
		),
	)
}

// GridVertices builds a reference grid on the XZ plane with 2*halfLines+1 lines in each direction.
// The lines through the origin are drawn as the X (red) and Z (blue) axes, with a green Y axis
// of the same length pointing up. Every fifth line is brighter.
//
// Parameters:
//   - halfLines: number of lines on each side of an axis
//   - spacing: distance between neighbouring lines in world units
//
// Returns:
//   - []LineVertex: line-list vertices, two per segment
func GridVertices(halfLines int, spacing float32) []LineVertex {
	if halfLines < 0 {
		halfLines = 0
	}
	extent := float32(halfLines) * spacing
	vertices := make([]LineVertex, 0, (2*halfLines+1)*4+2)

	for i := -halfLines; i <= halfLines; i++ {
		offset := float32(i) * spacing
		xColor, zColor := gridColor, gridColor
		switch {
		case i == 0:
			xColor, zColor = axisXColor, axisZColor
		case i%5 == 0:
			xColor, zColor = gridMajorColor, gridMajorColor
		}
		// parallel to X at z = offset
		vertices = append(vertices,
			LineVertex{Position: [3]float32{-extent, 0, offset}, Color: xColor},
			LineVertex{Position: [3]float32{extent, 0, offset}, Color: xColor},
		)
		// parallel to Z at x = offset
		vertices = append(vertices,
			LineVertex{Position: [3]float32{offset, 0, -extent}, Color: zColor},
			LineVertex{Position: [3]float32{offset, 0, extent}, Color: zColor},
		)
	}

	vertices = append(vertices,
		LineVertex{Position: [3]float32{0, 0, 0}, Color: axisYColor},
		LineVertex{Position: [3]float32{0, extent, 0}, Color: axisYColor},
	)
	return vertices
}

// PivotMarkerVertices builds a small three-axis cross centered on the orbit pivot.
//
// Parameters:
//   - pivot: world-space center of the marker
//   - size: half-length of each arm
//
// Returns:
//   - []LineVertex: six line-list vertices
func PivotMarkerVertices(pivot mgl32.Vec3, size float32) []LineVertex {
	vertices := make([]LineVertex, 0, pivotMarkerVertexCount)
	for axis := range 3 {
		var arm mgl32.Vec3
		arm[axis] = size
		vertices = append(vertices,
			LineVertex{Position: pivot.Sub(arm), Color: pivotColor},
			LineVertex{Position: pivot.Add(arm), Color: pivotColor},
		)
	}
	return vertices
}

// marshalLineVertices packs vertices into the little-endian layout expected by the lines pipeline.
func marshalLineVertices(vertices []LineVertex) []byte {
	buf := make([]byte, len(vertices)*lineVertexSize)
	for i, v := range vertices {
		base := i * lineVertexSize
		for j, f := range v.Position {
			binary.LittleEndian.PutUint32(buf[base+j*4:], math.Float32bits(f))
		}
		for j, f := range v.Color {
			binary.LittleEndian.PutUint32(buf[base+12+j*4:], math.Float32bits(f))
		}
	}
	return buf
}
