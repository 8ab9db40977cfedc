package request

import (
	"kanalsepet/internal/domain/entities"
)

// Surface message types, mirroring the cross-frame protocol.
const (
	SurfaceMessageState            = "state"
	SurfaceMessageChildReady       = "child-ready"
	SurfaceMessageDimensionsUpdate = "dimensions-update"
)

// SurfaceMessageRequest is the inbound envelope from the rendering surface.
//
//   - "state": reply to a getState round trip; RequestID correlates it.
//   - "child-ready": informational, logged only.
//   - "dimensions-update": informational display update, forwarded to the UI.
type SurfaceMessageRequest struct {
	Type       string                `json:"type" binding:"required"`
	RequestID  string                `json:"request_id"`
	Params     entities.ParamMap     `json:"params"`
	Thumb      string                `json:"thumb"`
	Title      string                `json:"title"`
	Dimensions *entities.Dimensions  `json:"dimensions,omitempty"`
	Area       *entities.SurfaceArea `json:"area,omitempty"`
}

// ResolveDimensions assembles the display-update payload from the top-level
// envelope fields. Absent fields read as zero values.
func (r SurfaceMessageRequest) ResolveDimensions() entities.SurfaceDimensions {
	var out entities.SurfaceDimensions
	if r.Dimensions != nil {
		out.Dimensions = *r.Dimensions
	}
	if r.Area != nil {
		out.Area = *r.Area
	}
	return out
}
