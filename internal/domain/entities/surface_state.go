package entities

// SurfaceState is the live configuration pulled from the embedded rendering
// surface through the state bridge: the current parametric values plus a
// rendered thumbnail. Both fields are opaque to this service.
//
// A nil *SurfaceState from the bridge means the surface did not answer inside
// the timeout budget; callers proceed without parameters/thumbnail.
type SurfaceState struct {
	Params ParamMap `json:"params,omitempty"`
	Thumb  string   `json:"thumb,omitempty"`
}

// Dimensions is the raw width/height/length triple the surface reports.
type Dimensions struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
	L float64 `json:"l"`
}

// SurfaceArea is the computed sheet-area breakdown. Inner and waste are only
// present for part shapes that have them.
type SurfaceArea struct {
	Outer float64  `json:"outer"`
	Inner *float64 `json:"inner,omitempty"`
	Waste *float64 `json:"waste,omitempty"`
}

// SurfaceDimensions is the unsolicited dimensions/area push from the surface.
// It is informational only and is forwarded to the UI display channel.
type SurfaceDimensions struct {
	Dimensions Dimensions  `json:"dimensions"`
	Area       SurfaceArea `json:"area"`
}
