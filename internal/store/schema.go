package store

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// kvColumns holds the columns for the "kv" table.
	kvColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// kvSchema holds the schema information for the "kv" table.
	kvSchema = &schema.Table{
		Name:       kvTable,
		Columns:    kvColumns,
		PrimaryKey: []*schema.Column{kvColumns[0]},
	}

	// sessionsColumns holds the columns for the "sessions" table.
	sessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeInt64},
		{Name: "ended_at", Type: field.TypeInt64},
		{Name: "score", Type: field.TypeInt},
		{Name: "solved", Type: field.TypeInt},
		{Name: "attempted", Type: field.TypeInt},
		{Name: "best_streak", Type: field.TypeInt},
		{Name: "accuracy", Type: field.TypeInt},
		{Name: "start_tier", Type: field.TypeInt},
		{Name: "end_tier", Type: field.TypeInt},
		{Name: "new_high_score", Type: field.TypeBool, Default: false},
	}
	// sessionsSchema holds the schema information for the "sessions" table.
	sessionsSchema = &schema.Table{
		Name:       sessionsTable,
		Columns:    sessionsColumns,
		PrimaryKey: []*schema.Column{sessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessions_ended_at",
				Unique:  false,
				Columns: []*schema.Column{sessionsColumns[2]},
			},
		},
	}

	// tables holds all the tables in the schema.
	tables = []*schema.Table{
		kvSchema,
		sessionsSchema,
	}
)

// migrate creates missing tables and columns. It never drops anything.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}
