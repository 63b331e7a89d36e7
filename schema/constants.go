package schema

// Custom string types for type safety.
type (
	// SignalName identifies one of the seven activation signals.
	SignalName string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string

	// InfluenceLevel represents the coarse band an influence falls into.
	InfluenceLevel string
)

// Signal identifiers in evaluation and display order.
const (
	RootSignal     SignalName = "E1_Root"
	SacralSignal   SignalName = "E2_Sacral"
	SolarSignal    SignalName = "E3_Solar"
	HeartSignal    SignalName = "E4_Heart"
	ThroatSignal   SignalName = "E5_Throat"
	ThirdEyeSignal SignalName = "E6_ThirdEye"
	CrownSignal    SignalName = "E7_Crown"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Influence bands used for console labels.
const (
	DominantLevel InfluenceLevel = "Dominant"
	StrongLevel   InfluenceLevel = "Strong"
	ModerateLevel InfluenceLevel = "Moderate"
	FaintLevel    InfluenceLevel = "Faint"
)

// Fixed chart artifact names written under the output directory.
const (
	IndividualPlotsFile  = "chakra_individual_plots.png"
	CombinedAnalysisFile = "chakra_combined_analysis.png"
	DecisionFlowFile     = "chakra_ai_decision_flow.png"
)

// SignalCount is the number of activation signals in a session.
const SignalCount = 7

// AllSignals lists every signal in fixed order.
var AllSignals = []SignalName{
	RootSignal,
	SacralSignal,
	SolarSignal,
	HeartSignal,
	ThroatSignal,
	ThirdEyeSignal,
	CrownSignal,
}

// ValidOutputModes lists all valid output modes for the summary.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidExportModes lists all valid output modes for signal export.
var ValidExportModes = map[OutputMode]struct{}{
	CSVOut:     {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
