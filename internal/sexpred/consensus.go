package sexpred

import "github.com/cmgg/qcreport/internal/record"

// genderMethods are the fields consulted for the consensus call.
var genderMethods = []string{KeyGenderXY, KeyGenderHetX, KeyGenderSRY}

// Consensus call values.
const (
	GenderMale    = "M"
	GenderFemale  = "F"
	GenderUnknown = "Unknown"
)

// DeriveConsensus counts how many of the three prediction methods call M
// and how many call F (anything else, including unknown markers, counts
// toward neither) and writes the certainty and consensus call into rec.
// A tie between M and F yields "Unknown" at the certainty the tie
// implies. Only the three raw method fields are read, so rerunning on an
// already-derived record yields the same result.
func DeriveConsensus(rec record.Fields) {
	var countM, countF int
	for _, method := range genderMethods {
		switch rec[method] {
		case GenderMale:
			countM++
		case GenderFemale:
			countF++
		}
	}

	const total = 3.0
	certainty := 0.0
	calc := GenderUnknown

	if countM >= countF {
		certainty = float64(countM) / total
		if countM > countF {
			calc = GenderMale
		}
	} else {
		certainty = float64(countF) / total
		calc = GenderFemale
	}

	rec[KeyCertainty] = certainty
	rec[KeyCalcGender] = calc
}
