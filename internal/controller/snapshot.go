package controller

import (
	"math"

	"github.com/annel0/buildregion/internal/click"
	"github.com/annel0/buildregion/internal/mode"
	"github.com/annel0/buildregion/internal/region"
	"github.com/annel0/buildregion/internal/vec"
)

// RegionSnapshot - неизменяемый снимок региона для коллабораторов отрисовки
type RegionSnapshot struct {
	Session     string         `json:"session"`
	Action      string         `json:"action"`
	Type        string         `json:"type"`
	Description string         `json:"description,omitempty"`
	Origin      vec.Vec3Float  `json:"origin"`
	Axis        string         `json:"axis"`
	Lower       *vec.Vec3Float `json:"lower,omitempty"`
	Upper       *vec.Vec3Float `json:"upper,omitempty"`
	Volume      *float64       `json:"volume,omitempty"` // nil для бесконечных регионов
	Mode        string         `json:"mode"`
	UserDefined bool           `json:"user_defined"`
}

// ModeSnapshot публикуется при смене режима
type ModeSnapshot struct {
	Session  string `json:"session"`
	Previous string `json:"previous"`
	Mode     string `json:"mode"`
}

// DeniedSnapshot публикуется при заблокированном клике
type DeniedSnapshot struct {
	Session     string            `json:"session"`
	Interaction click.Interaction `json:"interaction"`
	Decision    click.Decision    `json:"decision"`
	Mode        string            `json:"mode"`
}

func snapshotOf(session, action string, r region.Region, m mode.Mode, userDefined bool) RegionSnapshot {
	s := RegionSnapshot{
		Session:     session,
		Action:      action,
		Type:        region.TypeNone.String(),
		Mode:        m.String(),
		UserDefined: userDefined,
	}
	if r == nil {
		return s
	}

	s.Type = r.Type().String()
	s.Description = r.String()
	s.Origin = r.Origin()
	s.Axis = r.Axis().String()
	if lower, upper, ok := r.AABB(); ok {
		s.Lower, s.Upper = &lower, &upper
	}
	if size := r.Size(); !math.IsInf(size, 0) {
		s.Volume = &size
	}
	return s
}
