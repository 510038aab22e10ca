package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Month is the publication month of an issue. The zero value is January.
type Month int

const (
	January Month = iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m]
}

// ParseMonth maps a month name to its Month. Matching is case-sensitive.
func ParseMonth(name string) (Month, error) {
	for i, n := range monthNames {
		if n == name {
			return Month(i), nil
		}
	}
	return 0, fmt.Errorf("unknown month %q", name)
}

func (m *Month) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("month must be a string: %w", err)
	}
	parsed, err := ParseMonth(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *Month) UnmarshalYAML(value *yaml.Node) error {
	name, err := scalarString(value, "month")
	if err != nil {
		return err
	}
	parsed, err := ParseMonth(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = parsed
	return nil
}
