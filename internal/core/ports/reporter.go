package ports

import "github.com/FilipeBeck/pipe-builder/internal/core/domain"

// Reporter emits one line per pipeline completion.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Report joins parts and writes them as a single line styled by level.
	Report(level domain.ReportLevel, parts ...string)
}
