package domain

// RunState tracks one pipeline run through its stages. There are no retries:
// every run ends in ready, no_match, or failed.
type RunState string

const (
	StateParsing   RunState = "parsing"
	StateFetching  RunState = "fetching"
	StateFiltering RunState = "filtering"
	StateRendering RunState = "rendering"
	StatePackaging RunState = "packaging"
	StateReady     RunState = "ready"
	StateNoMatch   RunState = "no_match"
	StateFailed    RunState = "failed"
)

// SourceKind selects which record source backs a run.
type SourceKind string

const (
	SourceSheets SourceKind = "sheets"
	SourceXLSX   SourceKind = "xlsx"
)
