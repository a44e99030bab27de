package profile

// Table profiles a row-oriented dataset. The header set is the union of
// all field names across records, ordered by first appearance. Records
// may omit fields present in others; an absent field counts as missing.
func Table(records []Record, opts Options) *TableProfile {
	return TableWithHeaders(nil, records, opts)
}

// TableWithHeaders profiles a dataset with a declared header, as produced
// by delimited sources. The declared headers seed the column order; field
// names appearing only in records are appended in first-seen order.
func TableWithHeaders(headers []string, records []Record, opts Options) *TableProfile {
	seen := make(map[string]struct{}, len(headers))
	order := make([]string, 0, len(headers))

	for _, h := range headers {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		order = append(order, h)
	}

	for _, rec := range records {
		for _, f := range rec {
			if _, ok := seen[f.Name]; ok {
				continue
			}
			seen[f.Name] = struct{}{}
			order = append(order, f.Name)
		}
	}

	columns := make([]*ColumnProfile, len(order))

	for i, name := range order {
		raw := make([]interface{}, len(records))
		for j, rec := range records {
			if v, ok := rec.Get(name); ok {
				raw[j] = v
			}
		}
		columns[i] = Column(name, raw, opts)
	}

	return &TableProfile{
		RowCount:    len(records),
		ColumnCount: len(order),
		HeaderOrder: order,
		Columns:     columns,
	}
}
