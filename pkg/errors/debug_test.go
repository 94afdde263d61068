package errors

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDumpNil(t *testing.T) {
	d := Dump(nil)
	if d.TopMessage != "" || len(d.Chain) != 0 {
		t.Fatalf("expected empty dump, got %+v", d)
	}
}

func TestDumpTypedError(t *testing.T) {
	err := Wrap(CodePersistence, fmt.Errorf("connection reset"), "insert order")
	d := Dump(err)

	if d.Code != CodePersistence {
		t.Fatalf("expected code %s, got %s", CodePersistence, d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected unwrapped chain, got %v", d.Chain)
	}
	if d.PGCode != "" {
		t.Fatalf("pg fields should stay empty without a driver error")
	}
}

func TestDumpExtractsPgxDriverError(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "orders_pkey",
		TableName:      "orders",
		Detail:         "Key (id) already exists.",
		Message:        "duplicate key value violates unique constraint",
	}
	err := Wrap(CodePersistence, fmt.Errorf("insert: %w", pgErr), "insert order")
	d := Dump(err)

	if d.PGCode != "23505" {
		t.Fatalf("expected pg code 23505, got %q", d.PGCode)
	}
	if d.PGConstraint != "orders_pkey" || d.PGTable != "orders" {
		t.Fatalf("pg fields not extracted: %+v", d)
	}
	if d.PGMessage == "" || d.PGDetail == "" {
		t.Fatalf("expected message and detail, got %+v", d)
	}
}
