package query

// Table is a table reference with the alias it is selected under.
type Table struct {
	Name  string
	Alias string
}

// Projection is one selected column: <Table>.<Column> AS <Alias>.
type Projection struct {
	Table  string
	Column string
	Alias  string
}

// Project returns the projection list of columns read from table,
// each aliased <prefix>_<column>, in the order columns were given.
func Project(table Table, prefix string, columns ...string) []Projection {
	out := make([]Projection, 0, len(columns))
	for _, c := range columns {
		out = append(out, Projection{
			Table:  table.Alias,
			Column: c,
			Alias:  prefix + "_" + c,
		})
	}
	return out
}

func (p Projection) render() string {
	return p.Table + "." + p.Column + " AS " + p.Alias
}
