package msh2

import "github.com/cmgg/qcreport/internal/table"

// SnapshotName is the logical name of the persisted snapshot for this
// report type.
const SnapshotName = "targeted_msh2"

// SnapshotColumns is the fixed field order for snapshots of this report
// type: wild type count first, then the four hotspot variants.
var SnapshotColumns = append([]string{KeyWildType}, VariantKeys...)

// TableConfig returns the table-level display settings for the MSH2
// section.
func TableConfig() table.Config {
	return table.Config{
		ID:       "targeted_msh2",
		Title:    "Targeted: MSH2",
		SortRows: true,
		NoViolin: true,
	}
}

// Columns returns the display metadata for every field of this report
// type. Variant cells carry the Sanger highlighting rule, which matches
// on the embedded space of the "<frequency>% (<count>)" format.
func Columns() []table.Column {
	cols := []table.Column{
		{
			Key:         KeyWildType,
			Title:       "WT readcount",
			Description: "wild type readcount",
			Scale:       "PuBu",
		},
	}
	for _, key := range VariantKeys {
		variant := key[len("MSH2_"):]
		cols = append(cols, table.Column{
			Key:         key,
			Title:       variant + " frequency (readcount)",
			Description: "frequency " + variant + " (readcount)",
			Rules: []table.Rule{
				{Name: "sanger", Conditions: []table.Condition{{StrContains: " "}}, Colour: "#EE4B2B"},
			},
		})
	}
	return cols
}
