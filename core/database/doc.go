// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL or SQLite connections based on the application's configuration. The database
// is optional; it backs the comparison run history and nothing else.
//
// # Connect
//
// The Connect function establishes a connection for the configured driver. SQLite
// (including :memory:) is handy for tests and single-binary deployments, MySQL for
// shared ones.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. VerifyColumns is used
// at startup to catch a run-history table that drifted from the model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	err = database.VerifyColumns(db, "compare_runs", []string{"id", "created_at"})
package database
