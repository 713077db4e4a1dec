package adaptive_test

import (
	"testing"

	"github.com/katalvlaran/meshline/adaptive"
	"github.com/katalvlaran/meshline/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scan is a stand-in container embedding an adaptive line.
type scan struct {
	mesh adaptive.Line
}

func (s scan) boundMesh() mesh.Bound[adaptive.Line, scan] {
	return mesh.Bound[adaptive.Line, scan]{
		Mesh:    s.mesh,
		Rebuild: func(m adaptive.Line) scan { s.mesh = m; return s },
	}
}

// TestBinding_AdaptiveUpdate routes same-family and family-switching
// withers through the container.
func TestBinding_AdaptiveUpdate(t *testing.T) {
	base, err := adaptive.NewDivision(-1, 1, 1000)
	require.NoError(t, err)
	s := scan{mesh: base}

	next, err := s.boundMesh().Update(func(m adaptive.Line) (adaptive.Line, error) {
		return m.WithDivision(adaptive.Division(2000))
	})
	require.NoError(t, err)
	require.IsType(t, adaptive.DivisionLine{}, next.mesh)
	assert.Equal(t, 2000, next.mesh.Division())
	assert.Equal(t, 1000, s.mesh.Division(), "original container is untouched")

	next, err = s.boundMesh().Update(func(m adaptive.Line) (adaptive.Line, error) {
		return m.WithLoss(adaptive.Loss(0.01))
	})
	require.NoError(t, err)
	require.IsType(t, adaptive.LossLine{}, next.mesh)
	assert.Equal(t, 0.01, next.mesh.Loss())
}
