package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// SimilarityLevel represents how close two sampling rates are.
	SimilarityLevel string

	// EpochUnit represents the unit of numeric timestamps.
	EpochUnit string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All similarity levels supported.
const (
	VerySimilar       SimilarityLevel = "very_similar" // difference below 1 Hz
	ModeratelySimilar SimilarityLevel = "moderate"     // difference below 5 Hz
	Significant       SimilarityLevel = "significant"  // everything else, including NaN
)

// All epoch units supported for numeric timestamps.
const (
	AutoUnit    EpochUnit = "auto" // default
	SecondsUnit EpochUnit = "s"
	MillisUnit  EpochUnit = "ms"
	MicrosUnit  EpochUnit = "us"
	NanosUnit   EpochUnit = "ns"
)

// Stream defaults used by the batch comparison.
const (
	DefaultEyeColumn  = "gaze_capture_time"
	DefaultBodyColumn = "" // empty selects the first column
	DefaultEyeLabel   = "Eye Data"
	DefaultBodyLabel  = "Body Data"
)

// Similarity cutoffs in Hz.
const (
	DefaultThresholdHz = 5.0
	VerySimilarHz      = 1.0
)

// AutoNanosCutoff is the largest adjacent step, in raw units, that auto mode still reads as seconds.
const AutoNanosCutoff = 1e6

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidEpochUnits lists all valid epoch units.
var ValidEpochUnits = map[EpochUnit]struct{}{
	AutoUnit:    {},
	SecondsUnit: {},
	MillisUnit:  {},
	MicrosUnit:  {},
	NanosUnit:   {},
}
