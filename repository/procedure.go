package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// callStmt renders "CALL sp_Name(?, ?, ...)" for n parameters.
func callStmt(proc string, n int) string {
	if n == 0 {
		return "CALL " + proc + "()"
	}
	return "CALL " + proc + "(" + strings.TrimSuffix(strings.Repeat("?, ", n), ", ") + ")"
}

// call runs a procedure and scans its result set into dest.
func call(ctx context.Context, db *gorm.DB, dest any, proc string, args ...any) error {
	if err := db.WithContext(ctx).Raw(callStmt(proc, len(args)), args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("%s: %w", proc, err)
	}
	return nil
}

// exec runs a procedure that returns no rows.
func exec(ctx context.Context, db *gorm.DB, proc string, args ...any) error {
	if err := db.WithContext(ctx).Exec(callStmt(proc, len(args)), args...).Error; err != nil {
		return fmt.Errorf("%s: %w", proc, err)
	}
	return nil
}

// one returns the first row of the result set, or nil when it is empty.
func one[T any](ctx context.Context, db *gorm.DB, proc string, args ...any) (*T, error) {
	var rows []T
	if err := call(ctx, db, &rows, proc, args...); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// exists reads the single "existe" column every check procedure returns.
func exists(ctx context.Context, db *gorm.DB, proc string, args ...any) (bool, error) {
	var rows []struct{ Existe int }
	if err := call(ctx, db, &rows, proc, args...); err != nil {
		return false, err
	}
	return len(rows) > 0 && rows[0].Existe == 1, nil
}

// insertedID reads the identity a registration procedure selects back as
// its only column. It is 0 when the procedure returned no row.
func insertedID(ctx context.Context, db *gorm.DB, proc string, args ...any) (int64, error) {
	rows, err := db.WithContext(ctx).Raw(callStmt(proc, len(args)), args...).Rows()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", proc, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, rows.Err()
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", proc, err)
	}
	return id, nil
}
