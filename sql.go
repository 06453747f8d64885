package typedid

import "database/sql/driver"

// Value implements driver.Valuer, storing the canonical string form.
func (id ID[T, V]) Value() (driver.Value, error) {
	return id.val.Value()
}

// Scan implements sql.Scanner, accepting whatever the underlying library
// scans: string and byte-slice forms, textual or raw.
func (id *ID[T, V]) Scan(src interface{}) error {
	if err := id.val.Scan(src); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}
