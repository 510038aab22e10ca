package catalog

import "slices"

// Year is one run of consecutive same-year issues after sorting. A
// calendar year can appear in more than one Year when its volumes are not
// contiguous.
type Year struct {
	Year   uint16
	Issues []Issue
}

// Mirror is the grouped, render-ready catalog. Years keep the order in
// which their runs appear after the volume sort.
type Mirror struct {
	Years []Year
}

// Sort returns a copy of c stably sorted by volume. c is left untouched.
func Sort(c Catalog) Catalog {
	sorted := slices.Clone(c)
	slices.SortStableFunc(sorted, CompareByVolume)
	return sorted
}

// Group partitions an already sorted catalog into maximal runs of issues
// sharing a year. It does not merge runs of the same year.
func Group(sorted Catalog) Mirror {
	var m Mirror
	for _, issue := range sorted {
		n := len(m.Years)
		if n > 0 && m.Years[n-1].Year == issue.Year {
			m.Years[n-1].Issues = append(m.Years[n-1].Issues, issue)
			continue
		}
		m.Years = append(m.Years, Year{Year: issue.Year, Issues: []Issue{issue}})
	}
	return m
}

// Transform sorts c by volume and groups it into a Mirror.
func Transform(c Catalog) Mirror {
	return Group(Sort(c))
}

// Files returns every file reference in mirror order: year, issue, then
// declared file order. A file referenced twice appears twice.
func (m Mirror) Files() []File {
	var files []File
	for _, y := range m.Years {
		for _, issue := range y.Issues {
			files = append(files, issue.Files...)
		}
	}
	return files
}

// IssueCount returns the number of issues across all years.
func (m Mirror) IssueCount() int {
	n := 0
	for _, y := range m.Years {
		n += len(y.Issues)
	}
	return n
}
