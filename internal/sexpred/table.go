package sexpred

import "github.com/cmgg/qcreport/internal/table"

// SnapshotName is the logical name of the persisted snapshot for this
// report type.
const SnapshotName = "ngsbits_samplegender"

// SnapshotColumns is the fixed field order for snapshots of this report
// type.
var SnapshotColumns = []string{
	KeyCertainty,
	KeyCalcGender,
	KeyGenderXY,
	KeyGenderSRY,
	KeyGenderHetX,
	"ratio_chry_chrx",
	colCoverageSRY,
	colHetFraction,
}

// TableConfig returns the table-level display settings for the sex
// prediction section.
func TableConfig() table.Config {
	return table.Config{
		ID:        "sex_prediction",
		Title:     "Sex prediction",
		Namespace: "SampleGender",
	}
}

// Columns returns the display metadata for every field of this report
// type, in display order.
func Columns() []table.Column {
	return []table.Column{
		{
			Key:         KeyCertainty,
			Title:       "Certainty",
			Description: "Certainty of sex match",
			Format:      "{:.0%}",
			Max:         table.Float(1),
			Rules: []table.Rule{
				{Name: "pass", Conditions: []table.Condition{{Eq: table.Float(1)}}, Colour: "#5cb85c"},
				{Name: "warn", Conditions: []table.Condition{{Lt: table.Float(1)}}, Colour: "#f0ad4e"},
				{Name: "fail", Conditions: []table.Condition{{Lt: table.Float(0.4)}}, Colour: "#d9534f"},
			},
		},
		{
			Key:         KeyCalcGender,
			Title:       "Calculated Sex",
			Description: "Consensus predicted sex",
		},
		{
			Key:         KeyGenderXY,
			Title:       "Sex (XY)",
			Description: "Predicted gender based on chromosome read ratios",
		},
		{
			Key:         KeyGenderSRY,
			Title:       "Sex (SRY)",
			Description: "Predicted gender based on SRY gene coverage",
		},
		{
			Key:         KeyGenderHetX,
			Title:       "Sex (HETX)",
			Description: "Predicted gender based on heterozygous variants on X chromosome",
			Rules: []table.Rule{
				{Name: "unknown", Conditions: []table.Condition{{StrEq: "unknown (too few SNPs)"}}, Colour: "#808080"},
			},
		},
		{
			Key:         "ratio_chry_chrx",
			Title:       "ChrY/ChrX Ratio",
			Description: "Ratio of reads mapped to ChrY vs ChrX",
			Format:      "{:.4f}",
			Scale:       "Purples",
			Min:         table.Float(0),
		},
		{
			Key:         colCoverageSRY,
			Title:       "Coverage SRY",
			Description: "Coverage of SRY in chrY",
			Format:      "{:,.2f}",
			Scale:       "Blues",
			Min:         table.Float(0),
		},
		{
			Key:         colHetFraction,
			Title:       "Fraction HETX",
			Description: "Fraction of heterozygous SNPs in chrX",
			Format:      "{:,.4f}",
			Scale:       "Reds",
			Min:         table.Float(0),
		},
	}
}
