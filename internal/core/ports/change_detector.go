package ports

import "github.com/FilipeBeck/pipe-builder/internal/core/domain"

// ChangeDetector drops records whose destination artifact is already up to date.
//
//go:generate mockgen -source=change_detector.go -destination=mocks/mock_change_detector.go -package=mocks
type ChangeDetector interface {
	// Filter returns a pass-through stage over stream scoped to the destination.
	// An empty extension compares by path only; otherwise the destination
	// artifact is the relative path with its extension replaced.
	Filter(stream *domain.Stream, destination domain.DestLocation, extension string) *domain.Stream
}
