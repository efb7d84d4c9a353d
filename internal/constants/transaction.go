package constants

const (
	// Storage drivers
	DriverFile   = "file"
	DriverSQLite = "sqlite"

	// File backend layout
	IndexFileName = "index.txt"
	IndexTempName = "temp.txt"
	AuditFileName = "transaction.log"
	RecordFileExt = ".txt"

	// Audit timestamp layout, matches ctime(3)
	AuditTimeFormat = "Mon Jan _2 15:04:05 2006"
)
