package solver

import (
	"errors"
	"testing"
)

func testSchema() *Schema {
	return NewSchema(
		Field{Name: "counter", Index: 0},
		Field{Name: "balances", Index: 1, IsMap: true},
	)
}

func TestScalarKey(t *testing.T) {
	t.Run("returns single-element key", func(t *testing.T) {
		key, err := testSchema().ScalarKey("counter")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(key) != 1 || key[0] != 0 {
			t.Errorf("Expected [0], got %v", key)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := testSchema().ScalarKey("missing")
		var nf *FieldNotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("Expected FieldNotFoundError, got %v", err)
		}
		if nf.Field != "missing" {
			t.Errorf("Expected field %q, got %q", "missing", nf.Field)
		}
	})

	t.Run("map field rejected", func(t *testing.T) {
		_, err := testSchema().ScalarKey("balances")
		var fk *FieldKindError
		if !errors.As(err, &fk) {
			t.Fatalf("Expected FieldKindError, got %v", err)
		}
		if fk.WantMap {
			t.Error("Expected a not-a-scalar error")
		}
	})
}

func TestMapEntryKey(t *testing.T) {
	t.Run("concatenates base key and entry words", func(t *testing.T) {
		key, err := testSchema().MapEntryKey("balances", 10, 20, 30, 40)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		want := Key{1, 10, 20, 30, 40}
		if len(key) != len(want) {
			t.Fatalf("Expected key length %d, got %d", len(want), len(key))
		}
		for i := range want {
			if key[i] != want[i] {
				t.Errorf("Word %d: expected %d, got %d", i, want[i], key[i])
			}
		}
	})

	t.Run("stable across calls", func(t *testing.T) {
		s := testSchema()
		a, err := s.MapEntryKey("balances", 7)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		b, err := s.MapEntryKey("balances", 7)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(a) != len(b) || a[0] != b[0] || a[1] != b[1] {
			t.Errorf("Expected identical keys, got %v and %v", a, b)
		}
	})

	t.Run("scalar field rejected", func(t *testing.T) {
		_, err := testSchema().MapEntryKey("counter", 1)
		var fk *FieldKindError
		if !errors.As(err, &fk) {
			t.Fatalf("Expected FieldKindError, got %v", err)
		}
		if !fk.WantMap {
			t.Error("Expected a not-a-map error")
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := testSchema().MapEntryKey("missing", 1)
		var nf *FieldNotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("Expected FieldNotFoundError, got %v", err)
		}
	})
}
