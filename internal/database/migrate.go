package database

import (
	"context"
	"fmt"
	"log/slog"

	"fitlog/internal/middleware"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TableStatus describes how far the live schema of one model is behind its definition.
type TableStatus struct {
	Table          string   `json:"table" yaml:"table"`
	Exists         bool     `json:"exists" yaml:"exists"`
	MissingColumns []string `json:"missingColumns" yaml:"missingColumns"`
}

// UpToDate reports whether the table exists with every column.
func (s TableStatus) UpToDate() bool {
	return s.Exists && len(s.MissingColumns) == 0
}

// Migrate brings the schema up to date without destructive changes: absent tables are
// created with their constraints, and absent columns of existing tables are added.
// Existence is checked before every change, so running it repeatedly is a no-op.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	schemas, err := parseModels(tx)
	if err != nil {
		return err
	}

	migrator := tx.Migrator()
	for i, model := range PersistentModels() {
		sch := schemas[i]

		if !migrator.HasTable(model) {
			middleware.Logger.InfoContext(ctx, "Creating table", slog.String("table", sch.Table))
			if err := migrator.CreateTable(model); err != nil {
				return fmt.Errorf("create table %s: %w", sch.Table, err)
			}
			continue
		}

		for _, field := range migratableFields(sch) {
			if migrator.HasColumn(model, field.DBName) {
				continue
			}
			middleware.Logger.InfoContext(ctx, "Adding column",
				slog.String("table", sch.Table),
				slog.String("column", field.DBName),
			)
			if err := migrator.AddColumn(model, field.Name); err != nil {
				return fmt.Errorf("add column %s.%s: %w", sch.Table, field.DBName, err)
			}
		}
	}

	middleware.Logger.InfoContext(ctx, "Database migration completed")
	return nil
}

// Status reports, per model, whether its table exists and which columns are missing.
func Status(ctx context.Context, db *gorm.DB) ([]TableStatus, error) {
	tx := db.WithContext(ctx)
	schemas, err := parseModels(tx)
	if err != nil {
		return nil, err
	}

	migrator := tx.Migrator()
	statuses := make([]TableStatus, 0, len(schemas))
	for i, model := range PersistentModels() {
		sch := schemas[i]
		status := TableStatus{Table: sch.Table, MissingColumns: []string{}}

		if migrator.HasTable(model) {
			status.Exists = true
			for _, field := range migratableFields(sch) {
				if !migrator.HasColumn(model, field.DBName) {
					status.MissingColumns = append(status.MissingColumns, field.DBName)
				}
			}
		} else {
			for _, field := range migratableFields(sch) {
				status.MissingColumns = append(status.MissingColumns, field.DBName)
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// parseModels parses every model up front so relationship constraints declared on a
// parent (user → sessions, session → children) are known before child tables are created.
func parseModels(db *gorm.DB) ([]*schema.Schema, error) {
	models := PersistentModels()
	schemas := make([]*schema.Schema, 0, len(models))
	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		schemas = append(schemas, stmt.Schema)
	}
	return schemas, nil
}

func migratableFields(sch *schema.Schema) []*schema.Field {
	fields := make([]*schema.Field, 0, len(sch.DBNames))
	for _, name := range sch.DBNames {
		field := sch.FieldsByDBName[name]
		if field == nil || field.IgnoreMigration {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}
