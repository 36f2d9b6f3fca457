package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/heightfield/internal/config"
	"github.com/Faultbox/heightfield/internal/engine/terrain"
	"github.com/Faultbox/heightfield/internal/logger"
	"github.com/Faultbox/heightfield/pkg/grid"
	"github.com/Faultbox/heightfield/pkg/noise"
)

// Terrain is the CPU-side result of the terrain pipeline.
type Terrain struct {
	Heightmap *terrain.Heightmap
	Surface   *terrain.Mesh[terrain.FaceVertex]
	Normals   *terrain.Mesh[terrain.LineVertex]
	Bounds    terrain.Bounds
}

// BuildTerrain generates the heightmap, estimates its normals and builds
// the surface and normal-line meshes.
func BuildTerrain(tc config.TerrainConfig, dc config.DebugConfig) (*Terrain, error) {
	sx, err := grid.NewNonZero(tc.SamplesX)
	if err != nil {
		return nil, fmt.Errorf("samples_x: %w", err)
	}
	sz, err := grid.NewNonZero(tc.SamplesZ)
	if err != nil {
		return nil, fmt.Errorf("samples_z: %w", err)
	}
	texels, err := grid.NewNonZero(tc.TexelsPerTile)
	if err != nil {
		return nil, fmt.Errorf("texels_per_tile: %w", err)
	}
	kind, err := noise.ParseKind(tc.Noise)
	if err != nil {
		return nil, err
	}
	policy, err := terrain.ParseEdgePolicy(tc.EdgePolicy)
	if err != nil {
		return nil, err
	}

	hm, err := terrain.Generate(terrain.GenerateParams{
		Samples: [2]grid.NonZero{sx, sz},
		Seed:    tc.Seed,
		Area: terrain.Area{
			X: tc.Area.X,
			Y: tc.Area.Y,
			W: tc.Area.Width,
			H: tc.Area.Height,
		},
		MaxHeight: tc.MaxHeight,
		Noise:     kind,
	})
	if err != nil {
		return nil, fmt.Errorf("generating terrain: %w", err)
	}

	normals := terrain.EstimateNormals(hm, policy)

	sampleSize := [2]float32{
		tc.Span[0] / float32(sx.Int()),
		tc.Span[1] / float32(sz.Int()),
	}
	surface, err := terrain.BuildMesh(hm, normals, sampleSize, texels)
	if err != nil {
		return nil, fmt.Errorf("building mesh: %w", err)
	}

	t := &Terrain{
		Heightmap: hm,
		Surface:   surface,
		Normals:   terrain.ShowNormals(surface, dc.NormalLength, dc.NormalColors),
		Bounds:    terrain.BoundsOf(surface.Vertices),
	}

	logger.Info("terrain built",
		zap.Int("width", hm.Width()),
		zap.Int("height", hm.Height()),
		zap.Uint32("seed", tc.Seed),
		zap.String("noise", string(kind)),
		zap.Stringer("edge_policy", policy),
		zap.Int("vertices", len(surface.Vertices)),
		zap.Float32s("bounds_min", t.Bounds.Min[:]),
		zap.Float32s("bounds_max", t.Bounds.Max[:]),
	)

	return t, nil
}
