package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateTask is returned when a task identifier has already been registered in this process.
	ErrDuplicateTask = zerr.New("task identifier already exists")

	// ErrInvalidBuilding is returned when a building descriptor cannot be normalized.
	ErrInvalidBuilding = zerr.New("invalid building")

	// ErrPipelineFailed is returned when a single (building, task) pipeline fails.
	ErrPipelineFailed = zerr.New("pipeline failed")

	// ErrBuildFailed is returned by a combined outcome when at least one pipeline failed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrTransformPanicked is returned when a hook or task transform panics.
	ErrTransformPanicked = zerr.New("transform panicked")

	// ErrTransformReturnedNil is returned when a transform returns a nil stream without an error.
	ErrTransformReturnedNil = zerr.New("transform returned a nil stream")

	// ErrSourceNotFound is returned when a source glob matches no file and empty sources are not allowed.
	ErrSourceNotFound = zerr.New("source glob matched no files")

	// ErrInvalidGlob is returned when a source glob cannot be parsed.
	ErrInvalidGlob = zerr.New("invalid glob pattern")

	// ErrFileReadFailed is returned when a source file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read source file")

	// ErrFileWriteFailed is returned when a destination file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write destination file")

	// ErrPathOutsideDestination is returned when a file would be written outside its destination.
	ErrPathOutsideDestination = zerr.New("path escapes the destination")

	// ErrDirCreateFailed is returned when a destination directory cannot be created.
	ErrDirCreateFailed = zerr.New("failed to create destination directory")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrInvalidFlagArg is returned when a build flag argument is malformed.
	ErrInvalidFlagArg = zerr.New("invalid flag argument, expected --name or --name=value")

	// ErrConfigNotFound is returned when the pipefile cannot be found.
	ErrConfigNotFound = zerr.New("could not find pipefile")

	// ErrConfigReadFailed is returned when the pipefile cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read pipefile")

	// ErrConfigParseFailed is returned when the pipefile cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse pipefile")

	// ErrUnsupportedVersion is returned when the pipefile declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported pipefile version")

	// ErrUnknownTransform is returned when a transform spec names no known transform.
	ErrUnknownTransform = zerr.New("unknown transform")

	// ErrInvalidTransformSpec is returned when a transform spec is missing a required argument.
	ErrInvalidTransformSpec = zerr.New("invalid transform spec")

	// ErrCommandFailed is returned when an exec transform command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrInvalidCompareMode is returned when a change comparison mode is unknown.
	ErrInvalidCompareMode = zerr.New("invalid compare mode")

	// ErrNoBuildings is returned when a build is requested without any building.
	ErrNoBuildings = zerr.New("no buildings defined")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start watcher")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
