package models

// TimelineExport is the root of a Google Timeline location-history
// export. Two schema generations are supported: the current flat
// semanticSegments list and the older nested timelineObjects shape.
// Documents matching neither decode to zero values and analyze to an
// empty result.
type TimelineExport struct {
	SemanticSegments []TimelineSegment `json:"semanticSegments"`
	TimelineObjects  []TimelineObject  `json:"timelineObjects"`
}

// TimelineObject is one entry of the legacy nested export shape
type TimelineObject struct {
	TimelineSegments []TimelineSegment `json:"timelineSegments"`
}

// TimelineSegment is one stay or movement record. All coordinate
// slots are optional; presence must be checked before use.
type TimelineSegment struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	Visit        *SegmentVisit    `json:"visit,omitempty"`
	Activity     *SegmentActivity `json:"activity,omitempty"`
	TimelinePath []PathPoint      `json:"timelinePath,omitempty"`
}

// SegmentVisit describes a stay at a place
type SegmentVisit struct {
	TopCandidate *PlaceCandidate `json:"topCandidate,omitempty"`
}

// PlaceCandidate is the most likely place for a visit
type PlaceCandidate struct {
	PlaceLocation *LatLngHolder `json:"placeLocation,omitempty"`
}

// SegmentActivity describes a movement between two points
type SegmentActivity struct {
	Start *LatLngHolder `json:"start,omitempty"`
	End   *LatLngHolder `json:"end,omitempty"`
}

// PathPoint is one intermediate point of a movement path
type PathPoint struct {
	Point string `json:"point,omitempty"`
}

// LatLngHolder wraps the export's raw coordinate string. The string
// uses one of two encodings (E7 scaled integers or degree-suffixed
// decimals); decoding is left to the timeline parser.
type LatLngHolder struct {
	LatLng string `json:"latLng,omitempty"`
}
