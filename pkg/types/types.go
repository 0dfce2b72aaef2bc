package types

import "path/filepath"

// Status tracks a file through the matching pipeline. A file starts as
// Discovered and advances stage by stage until it reaches one of the
// terminal states: Matched, Skipped or Failed.
type Status string

const (
	StatusDiscovered     Status = "discovered"
	StatusNameChecked    Status = "name-checked"
	StatusParentResolved Status = "parent-resolved"
	StatusSubResolved    Status = "sub-resolved"
	StatusMatched        Status = "matched"
	StatusSkipped        Status = "skipped"
	StatusFailed         Status = "failed"
)

// IsTerminal reports whether no further pipeline stage applies
func (s Status) IsTerminal() bool {
	return s == StatusMatched || s == StatusSkipped || s == StatusFailed
}

// FailureCategory labels why a file ended up in the failed bucket
type FailureCategory string

const (
	FailureInvalidFileName FailureCategory = "Invalid File"
	FailureInvalidMatch    FailureCategory = "Invalid Match"
)

// Record holds the field values parsed out of a filename, keyed by
// field name
type Record map[string]string

// File is a single source file moving through the pipeline. It is
// created when the walk discovers the file and is not touched again
// once classified into a terminal status.
type File struct {
	Name string // base name including extension
	Dir  string // directory the file was found in
	Path string // full source path

	Fields Record // populated after the name check

	TargetParentDir string // populated after parent resolution
	TargetSubDir    string // populated after sub-folder resolution
	TargetPath      string // final destination, sub dir + name

	Status   Status
	Category FailureCategory // set only for StatusFailed
	Message  string          // human-readable outcome, set on Matched/Failed
}

// NewFile creates a freshly discovered file
func NewFile(dir, name string) *File {
	return &File{
		Name:   name,
		Dir:    dir,
		Path:   filepath.Join(dir, name),
		Status: StatusDiscovered,
	}
}

// RunSummary accumulates the outcome of one matching run. It is owned
// by a single engine run; nothing mutates it concurrently.
type RunSummary struct {
	TotalScanned int
	Matched      []*File
	Failed       []*File
	SkippedCount int
}
