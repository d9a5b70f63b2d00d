// Package flatfile persists the entity graph as delimited text, one file
// per entity type, and reconstructs cross-entity references on load.
//
// The format is fixed-column, comma-delimited, headerless, with no
// quoting or escaping. Optional references (a course's instructor, an
// enrollment's grade) are written as the literal sentinel NULL so that
// "absent" stays distinguishable from an empty string.
package flatfile

const (
	// Delimiter separates fields within a record. Fields must not
	// contain it; the exporter rejects such writes.
	Delimiter = ","

	// Sentinel marks an absent optional reference. Matched
	// case-insensitively on read.
	Sentinel = "NULL"

	// DateLayout is the dd-MM-yyyy birth-date layout used in all files.
	DateLayout = "02-01-2006"

	studentsFile    = "students.csv"
	instructorsFile = "instructors.csv"
	coursesFile     = "courses.csv"
	enrollmentsFile = "enrollments.csv"
)
