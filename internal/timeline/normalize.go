package timeline

import "github.com/razorspoint/timeline-backend-go/internal/models"

// Segments flattens an export into a single segment list. The current
// semanticSegments shape wins when non-empty; otherwise the legacy
// nested timelineObjects shape is flattened. Documents carrying
// neither yield nil, which analyzes to an empty result.
func Segments(export models.TimelineExport) []models.TimelineSegment {
	if len(export.SemanticSegments) > 0 {
		return export.SemanticSegments
	}

	var segments []models.TimelineSegment
	for _, obj := range export.TimelineObjects {
		segments = append(segments, obj.TimelineSegments...)
	}
	return segments
}
