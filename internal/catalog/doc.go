// Package catalog models the hand-written issue catalog and turns it into
// the grouped Mirror the index is rendered from.
//
// # Catalog
//
// A catalog is a JSON (comments and trailing commas allowed) or YAML list
// of issues:
//
//	[
//	  {"volume": 1, "year": 2013, "month": "June", "description": "...", "files": ["pocorgtfo01.pdf"]}
//	]
//
// # Transform
//
// Transform sorts issues by volume and then cuts the sorted list into runs
// of consecutive issues sharing a year:
//
//	mirror := catalog.Transform(c)
//	for _, y := range mirror.Years {
//	    fmt.Println(y.Year, len(y.Issues))
//	}
//
// Runs are never merged, so a year whose volumes are interleaved with
// another year's shows up once per run.
package catalog
