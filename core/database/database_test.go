package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid MySQL Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "invoices",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		cfg := Config{
			Driver: DriverSQLite,
			Name:   ":memory:",
		}

		db, err := Connect(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})

	// We cannot test a successful MySQL connection without a real server,
	// but ensuring it fails gracefully covers the error path.
}

func TestConfigIsValidDriver(t *testing.T) {
	assert.True(t, Config{Driver: DriverMySQL}.IsValidDriver())
	assert.True(t, Config{Driver: DriverSQLite}.IsValidDriver())
	assert.False(t, Config{Driver: "postgres"}.IsValidDriver())
	assert.False(t, Config{}.IsValidDriver())
}
