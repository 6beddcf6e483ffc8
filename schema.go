package solver

// Field declares one top-level entry in a contract's storage layout.
// Index is the position the contract was compiled with; a mismatch makes
// reads and writes silently target the wrong slot.
type Field struct {
	Name  string
	Index Word
	IsMap bool
}

// Schema mirrors a deployed contract's storage declaration. All storage
// keys are derived through it, so adding a field never touches call sites.
type Schema struct {
	fields map[string]Field
}

// NewSchema builds a schema from its field declarations. Later duplicates
// of a name replace earlier ones.
func NewSchema(fields ...Field) *Schema {
	s := &Schema{fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		s.fields[f.Name] = f
	}
	return s
}

// Field returns the declaration for name.
func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// ScalarKey returns the storage key of a top-level scalar field.
func (s *Schema) ScalarKey(name string) (Key, error) {
	f, ok := s.fields[name]
	if !ok {
		return nil, &FieldNotFoundError{Field: name}
	}
	if f.IsMap {
		return nil, &FieldKindError{Field: name, WantMap: false}
	}
	return Key{f.Index}, nil
}

// MapEntryKey returns the storage key of one entry in a map field: the
// field's base key followed by the entry's identifying words.
func (s *Schema) MapEntryKey(name string, entry ...Word) (Key, error) {
	f, ok := s.fields[name]
	if !ok {
		return nil, &FieldNotFoundError{Field: name}
	}
	if !f.IsMap {
		return nil, &FieldKindError{Field: name, WantMap: true}
	}
	key := make(Key, 0, 1+len(entry))
	key = append(key, f.Index)
	key = append(key, entry...)
	return key, nil
}
