package terrain

import (
	"math"
	"testing"

	"github.com/Faultbox/heightfield/pkg/grid"
	"github.com/Faultbox/heightfield/pkg/noise"
)

func params(w, h int, seed uint32) GenerateParams {
	return GenerateParams{
		Samples:   [2]grid.NonZero{grid.MustNonZero(w), grid.MustNonZero(h)},
		Seed:      seed,
		Area:      Area{X: 0, Y: 0, W: 1000, H: 1000},
		MaxHeight: 30,
	}
}

func mustGenerate(t *testing.T, p GenerateParams) *Heightmap {
	t.Helper()
	hm, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return hm
}

func length(v [3]float32) float64 {
	return math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		v, want  float32
		from, to [2]float32
	}{
		{0, 15, [2]float32{-1, 1}, [2]float32{0, 30}},
		{-1, 0, [2]float32{-1, 1}, [2]float32{0, 30}},
		{1, 30, [2]float32{-1, 1}, [2]float32{0, 30}},
		{5, 0.5, [2]float32{0, 10}, [2]float32{0, 1}},
		{2, -2, [2]float32{0, 1}, [2]float32{0, -1}},
	}

	for _, tt := range tests {
		got := MapRange(tt.v, tt.from, tt.to)
		if math.Abs(float64(got-tt.want)) > 1e-5 {
			t.Errorf("MapRange(%v, %v, %v) = %v, want %v", tt.v, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, kind := range []noise.Kind{noise.OpenSimplex, noise.Perlin} {
		p := params(20, 20, 12)
		p.Noise = kind
		a := mustGenerate(t, p)
		b := mustGenerate(t, p)

		for i := range a.Len() {
			if a.At(i) != b.At(i) {
				t.Fatalf("%s: height %d differs between runs: %v vs %v", kind, i, a.At(i), b.At(i))
			}
		}
	}
}

func TestGenerateHeightRange(t *testing.T) {
	p := params(50, 40, 7)
	p.Area = Area{X: -300, Y: 200, W: 2000, H: 1500}
	hm := mustGenerate(t, p)

	if got := hm.Len(); got != 50*40 {
		t.Fatalf("Len() = %d, want %d", got, 50*40)
	}
	if w, h := hm.Size(); w != 50 || h != 40 {
		t.Errorf("Size() = %dx%d, want 50x40", w, h)
	}
	if _, ok := hm.Dimension().(grid.FixedHeight); !ok {
		t.Errorf("dimension is %T, want grid.FixedHeight", hm.Dimension())
	}

	for c, v := range hm.All() {
		if v < 0 || v > p.MaxHeight {
			t.Fatalf("height at %v = %v, outside [0, %v]", c, v, p.MaxHeight)
		}
	}
}

func TestGenerateSeedChangesTerrain(t *testing.T) {
	a := mustGenerate(t, params(10, 10, 1))
	b := mustGenerate(t, params(10, 10, 2))

	for i := range a.Len() {
		if a.At(i) != b.At(i) {
			return
		}
	}
	t.Error("different seeds produced identical terrain")
}

func TestGenerateRejectsInvalid(t *testing.T) {
	p := params(4, 4, 1)
	p.Samples[1] = grid.NonZero{}
	if _, err := Generate(p); err == nil {
		t.Error("expected error for zero sample count, got nil")
	}

	p = params(4, 4, 1)
	p.Noise = "worley"
	if _, err := Generate(p); err == nil {
		t.Error("expected error for unknown noise kind, got nil")
	}
}

func TestTerrainNormalFlat(t *testing.T) {
	n := TerrainNormal(1, 1, 1, 1)
	want := [3]float32{0, 1, 0}
	for i := range 3 {
		if math.Abs(float64(n[i]-want[i])) > 1e-6 {
			t.Fatalf("TerrainNormal(flat) = %v, want %v", n, want)
		}
	}
}

func TestTerrainNormalSlope(t *testing.T) {
	// Rising towards +X tilts the normal towards -X.
	n := TerrainNormal(2, 0, 1, 1)
	if n[0] >= 0 {
		t.Errorf("normal X = %v, want negative", n[0])
	}
	if math.Abs(length(n)-1) > 1e-5 {
		t.Errorf("normal length = %v, want 1", length(n))
	}
	if n[2] != 0 {
		t.Errorf("normal Z = %v, want 0", n[2])
	}
}

func TestTriangleNormal(t *testing.T) {
	n := TriangleNormal([3]float32{0, 0, 0}, [3]float32{0, 0, 1}, [3]float32{1, 0, 0})
	want := [3]float32{0, 1, 0}
	if n != want {
		t.Errorf("TriangleNormal = %v, want %v", n, want)
	}
}

func TestEstimateNormalsUnitLength(t *testing.T) {
	hm := mustGenerate(t, params(16, 12, 3))
	for _, policy := range []EdgePolicy{EdgeCopy, EdgeReflect} {
		normals := EstimateNormals(hm, policy)
		if len(normals) != hm.Len() {
			t.Fatalf("%s: got %d normals, want %d", policy, len(normals), hm.Len())
		}
		for i, n := range normals {
			if math.Abs(length(n)-1) > 1e-5 {
				t.Fatalf("%s: normal %d = %v has length %v", policy, i, n, length(n))
			}
		}
	}
}

func TestEstimateNormalsEdgeCopy(t *testing.T) {
	// 2x1 strip along X: heights 0 and 4. Column-major with height 1.
	hm, err := grid.New([]float32{0, 4}, grid.NewFixedHeight(grid.MustNonZero(1)))
	if err != nil {
		t.Fatal(err)
	}

	normals := EstimateNormals(hm, EdgeCopy)
	// Cell 0: right=4, left=self=0, up/down=self.
	want := TerrainNormal(4, 0, 0, 0)
	if normals[0] != want {
		t.Errorf("cell 0 normal = %v, want %v", normals[0], want)
	}
	// Cell 1: right=self=4, left=0.
	want = TerrainNormal(4, 0, 4, 4)
	if normals[1] != want {
		t.Errorf("cell 1 normal = %v, want %v", normals[1], want)
	}
}

func TestEstimateNormalsEdgeReflect(t *testing.T) {
	hm, err := grid.New([]float32{0, 4}, grid.NewFixedHeight(grid.MustNonZero(1)))
	if err != nil {
		t.Fatal(err)
	}

	normals := EstimateNormals(hm, EdgeReflect)
	// Cell 0: left is reflected from right: 2*0 - 4 = -4.
	want := TerrainNormal(4, -4, 0, 0)
	if normals[0] != want {
		t.Errorf("cell 0 normal = %v, want %v", normals[0], want)
	}
}

func TestParseEdgePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    EdgePolicy
		wantErr bool
	}{
		{"", EdgeCopy, false},
		{"copy", EdgeCopy, false},
		{"reflect", EdgeReflect, false},
		{"mirror", EdgeCopy, true},
	}
	for _, tt := range tests {
		got, err := ParseEdgePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEdgePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseEdgePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
