package game

import (
	"math"
	"testing"
)

func TestBoxMeshIsUnitCube(t *testing.T) {
	v := boxMesh()
	if len(v) != 36*meshStride {
		t.Fatalf("box vertices: got %d want 36", len(v)/meshStride)
	}
	for i := 0; i < len(v); i += meshStride {
		for a := 0; a < 3; a++ {
			if math.Abs(float64(v[i+a])) != 0.5 {
				t.Fatalf("vertex %d off the unit cube: %v", i/meshStride, v[i:i+3])
			}
		}
		// The face normal points the same way as the vertex on that axis.
		var dot float32
		for a := 0; a < 3; a++ {
			dot += v[i+a] * v[i+3+a]
		}
		if dot != 0.5 {
			t.Fatalf("vertex %d normal %v not outward", i/meshStride, v[i+3:i+6])
		}
	}
}

func TestCylinderMeshRadius(t *testing.T) {
	const segs = 16
	v := cylinderMesh(segs)
	if len(v) != segs*12*meshStride {
		t.Fatalf("cylinder vertices: got %d", len(v)/meshStride)
	}
	for i := 0; i < len(v); i += meshStride {
		x, y, z := float64(v[i]), float64(v[i+1]), float64(v[i+2])
		r := math.Hypot(x, z)
		if r > 0.5+1e-6 {
			t.Fatalf("vertex outside radius: r=%f", r)
		}
		if math.Abs(math.Abs(y)-0.5) > 1e-6 {
			t.Fatalf("vertex off the caps: y=%f", y)
		}
	}
}
