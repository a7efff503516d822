package postgresql_test

// stubRow satisfies pgx.Row for queries that return a generated id.
type stubRow struct {
	id  int64
	err error
}

func (r stubRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if id, ok := dest[0].(*int64); ok {
			*id = r.id
		}
	}
	return nil
}
