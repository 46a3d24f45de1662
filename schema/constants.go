package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string

	// Sport represents the activity sport type.
	Sport string
)

// All output modes supported.
const (
	TableOut OutputMode = "table" // default
	CSVOut   OutputMode = "csv"
	JSONOut  OutputMode = "json"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All sports a synthetic activity can carry. The list is fixed so that a
// single generator draw maps to a sport deterministically.
const (
	RunSport  Sport = "run"
	RideSport Sport = "ride"
	RowSport  Sport = "row"
	SkiSport  Sport = "ski"
)

// AllSports is the draw table for sport selection; order matters for
// seed-stable output, so only append.
var AllSports = []Sport{RunSport, RideSport, RowSport, SkiSport}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TableOut: {},
	CSVOut:   {},
	JSONOut:  {},
}

// ValidStoreBackends lists all valid run store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
