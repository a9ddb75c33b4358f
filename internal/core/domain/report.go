package domain

// ReportLevel distinguishes success lines from failure lines.
type ReportLevel uint8

const (
	// ReportSuccess marks a pipeline that finished writing its destination.
	ReportSuccess ReportLevel = iota
	// ReportFailure marks a pipeline that failed.
	ReportFailure
)

// String returns the level name.
func (l ReportLevel) String() string {
	switch l {
	case ReportSuccess:
		return "success"
	case ReportFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// DefaultMessage is reported when a building declares no messages.
const DefaultMessage = "Finished"
