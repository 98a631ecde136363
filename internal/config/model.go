package config

import "github.com/specialistvlad/ringgen/internal/ring"

// Model is the unified representation of one configuration source.
type Model struct {
	Ring       *Ring
	Netconvert *Netconvert
}

// Ring is the format-agnostic representation of the ring parameters.
type Ring struct {
	Name      *string
	Radius    *float64
	Dimension *float64
	Edges     *int
	Lanes     *int
	Speed     *float64
}

// Netconvert configures the external network compiler.
type Netconvert struct {
	Binary *string
	Args   []string
}

// Apply overlays every parameter set in r onto in.
func (r *Ring) Apply(in *ring.Input) {
	if r == nil {
		return
	}
	if r.Name != nil {
		in.Name = *r.Name
	}
	if r.Radius != nil {
		in.Radius = *r.Radius
	}
	if r.Dimension != nil {
		dim := *r.Dimension
		in.Dimension = &dim
	}
	if r.Edges != nil {
		in.Edges = *r.Edges
	}
	if r.Lanes != nil {
		in.Lanes = *r.Lanes
	}
	if r.Speed != nil {
		in.Speed = *r.Speed
	}
}

// Merge overlays the settings of other onto m, field by field. Extra
// netconvert arguments accumulate.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	if other.Ring != nil {
		if m.Ring == nil {
			m.Ring = &Ring{}
		}
		m.Ring.merge(other.Ring)
	}
	if other.Netconvert != nil {
		if m.Netconvert == nil {
			m.Netconvert = &Netconvert{}
		}
		if other.Netconvert.Binary != nil {
			m.Netconvert.Binary = other.Netconvert.Binary
		}
		m.Netconvert.Args = append(m.Netconvert.Args, other.Netconvert.Args...)
	}
}

func (r *Ring) merge(o *Ring) {
	if o.Name != nil {
		r.Name = o.Name
	}
	if o.Radius != nil {
		r.Radius = o.Radius
	}
	if o.Dimension != nil {
		r.Dimension = o.Dimension
	}
	if o.Edges != nil {
		r.Edges = o.Edges
	}
	if o.Lanes != nil {
		r.Lanes = o.Lanes
	}
	if o.Speed != nil {
		r.Speed = o.Speed
	}
}
