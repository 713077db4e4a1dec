package mesh

// Bound couples a mesh line embedded as a field of a containing object
// with the rebuild function that installs a replacement line into a fresh
// container. It makes the two-level functional update explicit: the line
// update produces a new line value, and Rebuild produces a new container
// holding it — the original container is never mutated.
//
// M is the line type as stored by the container (typically a family
// interface such as uniform.Line); C is the container type.
//
// Example:
//
//	type Probe struct{ Mesh uniform.Line }
//
//	func (p Probe) BoundMesh() mesh.Bound[uniform.Line, Probe] {
//	  return mesh.Bound[uniform.Line, Probe]{
//	    Mesh:    p.Mesh,
//	    Rebuild: func(m uniform.Line) Probe { p.Mesh = m; return p },
//	  }
//	}
//
//	next, err := probe.BoundMesh().Update(func(m uniform.Line) (uniform.Line, error) {
//	  return m.WithDivision(uniform.Division(500))
//	})
//	// next is a new Probe whose Mesh has division 500.
type Bound[M Line, C any] struct {
	// Mesh is the currently embedded line.
	Mesh M
	// Rebuild installs a replacement line and returns the new container.
	Rebuild func(M) C
}

// Update applies a functional update to the embedded line and routes the
// replacement through Rebuild, returning the rebuilt container. The error
// from the update is propagated untouched; on error the zero container is
// returned and Rebuild is not called.
func (b Bound[M, C]) Update(with func(M) (M, error)) (C, error) {
	next, err := with(b.Mesh)
	if err != nil {
		var zero C

		return zero, err
	}

	return b.Rebuild(next), nil
}
