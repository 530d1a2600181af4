package postgres

import (
	"testing"

	"github.com/SergeyBogomolovv/media-store-orders/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := config.Postgres{
		Host:     "db",
		Port:     5432,
		DBName:   "media_store",
		User:     "orders",
		Password: "p@ss word",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://orders:p%40ss%20word@db:5432/media_store?sslmode=disable", DSN(cfg))
}

func TestSchemaEmbedded(t *testing.T) {
	for _, table := range []string{"products", "orders", "order_lines", "payment_transactions", "order_transitions"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table)
	}
}
