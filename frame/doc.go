// Package frame bundles named columns behind a shared coordinate index.
//
// A Frame is a thin composition over the index and field packages: every
// column is a field whose domain matches the frame's coordinate index, and
// every frame operation is expressed through the five field/index
// primitives (map, filter, resolve, compose, mask). Columns of different
// value types live together behind the Column interface; a typed field
// becomes a column with ColumnOf.
//
//	temps, err := field.New[string](cities, field.FromSlice(readings))
//	...
//	df, err := frame.New[string](cities,
//	    frame.Col[string]("temp", frame.ColumnOf[string](temps)),
//	    frame.Col[string]("name", frame.ColumnOf[string](names)),
//	)
//
// The Fields view addresses columns by name; the Rows view addresses
// values row-wise by key, and derives new frames by filtering or sorting
// rows. Deriving is lazy the way field operations are lazy: a filtered or
// sorted frame shares the storage of its parent until Reshape materializes
// every column against the current coordinate index.
//
// Frames with arbitrary key types are constructed with New. FromRecords
// and FromArrays assemble integer-keyed frames from loosely typed external
// data; they are the only operations here that log (a debug summary,
// through the tlog logger in the context).
package frame
