package entity

import "fmt"

// SpecialityType is the closed set of medical specialities supported by the
// system. Values are the external string representation stored in the DB.
type SpecialityType string

const (
	SpecialityAllgemeinmedizin SpecialityType = "allgemeinmedizin"
	SpecialityInnereMedizin    SpecialityType = "inneremedizin"
	SpecialityKardiologie      SpecialityType = "kardiologe"
	SpecialityDermatologie     SpecialityType = "dermatologe"
	SpecialityOrthopaedie      SpecialityType = "orthopäde"
	SpecialityNeurologie       SpecialityType = "neurologe"
	SpecialityPsychiatrie      SpecialityType = "psychiater"
	SpecialityGynaekologie     SpecialityType = "gynäkologe"
	SpecialityPaediatrie       SpecialityType = "pädiater"
	SpecialityUrologie         SpecialityType = "urologe"
	SpecialityAugenheilkunde   SpecialityType = "augenarzt"
	SpecialityHNO              SpecialityType = "hno"
	SpecialityRadiologie       SpecialityType = "radiologe"
	SpecialityAnaesthesiologie SpecialityType = "anästhesist"
	SpecialityZahnmedizin      SpecialityType = "zahnarzt"
)

// AllSpecialityTypes lists every supported speciality in declaration order.
var AllSpecialityTypes = []SpecialityType{
	SpecialityAllgemeinmedizin,
	SpecialityInnereMedizin,
	SpecialityKardiologie,
	SpecialityDermatologie,
	SpecialityOrthopaedie,
	SpecialityNeurologie,
	SpecialityPsychiatrie,
	SpecialityGynaekologie,
	SpecialityPaediatrie,
	SpecialityUrologie,
	SpecialityAugenheilkunde,
	SpecialityHNO,
	SpecialityRadiologie,
	SpecialityAnaesthesiologie,
	SpecialityZahnmedizin,
}

// SpecialityTypeFromValue converts an external string to a SpecialityType.
func SpecialityTypeFromValue(value string) (SpecialityType, error) {
	for _, t := range AllSpecialityTypes {
		if t == SpecialityType(value) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid speciality value: %q", value)
}
