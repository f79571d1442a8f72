package domain

// neutralOrdinal is the position used for unknown or missing values in
// the ordinal scales below.
const neutralOrdinal = 1

type SleepSchedule string

const (
	SleepEarly    SleepSchedule = "early"
	SleepNormal   SleepSchedule = "normal"
	SleepNightOwl SleepSchedule = "night-owl"
	SleepShift    SleepSchedule = "shift"
)

// Ordinal places the schedule on the early..shift scale.
func (s SleepSchedule) Ordinal() int {
	switch s {
	case SleepEarly:
		return 0
	case SleepNormal:
		return 1
	case SleepNightOwl:
		return 2
	case SleepShift:
		return 3
	default:
		return neutralOrdinal
	}
}

func (s SleepSchedule) Valid() bool {
	switch s {
	case SleepEarly, SleepNormal, SleepNightOwl, SleepShift:
		return true
	}
	return false
}

type GuestsFrequency string

const (
	GuestsRarely       GuestsFrequency = "rarely"
	GuestsOccasionally GuestsFrequency = "occasionally"
	GuestsFrequently   GuestsFrequency = "frequently"
)

func (g GuestsFrequency) Ordinal() int {
	switch g {
	case GuestsRarely:
		return 0
	case GuestsOccasionally:
		return 1
	case GuestsFrequently:
		return 2
	default:
		return neutralOrdinal
	}
}

func (g GuestsFrequency) Valid() bool {
	switch g {
	case GuestsRarely, GuestsOccasionally, GuestsFrequently:
		return true
	}
	return false
}

type SubstanceEnv string

const (
	SubstanceSmokeFree    SubstanceEnv = "smoke-free"
	SubstanceAlcoholOK    SubstanceEnv = "alcohol-ok"
	Substance420Friendly  SubstanceEnv = "420-friendly"
	SubstanceNoSubstances SubstanceEnv = "no-substances"
)

func (s SubstanceEnv) Valid() bool {
	switch s {
	case SubstanceSmokeFree, SubstanceAlcoholOK, Substance420Friendly, SubstanceNoSubstances:
		return true
	}
	return false
}

type NoiseTolerance string

const (
	NoiseQuiet        NoiseTolerance = "quiet"
	NoiseModerate     NoiseTolerance = "moderate"
	NoiseBackgroundOK NoiseTolerance = "background-ok"
)

func (n NoiseTolerance) Valid() bool {
	switch n {
	case NoiseQuiet, NoiseModerate, NoiseBackgroundOK:
		return true
	}
	return false
}

type PetAllergy string

const (
	AllergyNone PetAllergy = "none"
	AllergyDog  PetAllergy = "dog"
	AllergyCat  PetAllergy = "cat"
	AllergyBoth PetAllergy = "both"
)

func (a PetAllergy) Valid() bool {
	switch a {
	case AllergyNone, AllergyDog, AllergyCat, AllergyBoth:
		return true
	}
	return false
}

type LeaseDuration string

// LeaseAny is the filter value that disables lease matching.
const LeaseAny LeaseDuration = "any"

const (
	Lease4Months    LeaseDuration = "4-months"
	Lease8Months    LeaseDuration = "8-months"
	Lease12Months   LeaseDuration = "12-months"
	Lease12Plus     LeaseDuration = "12-plus"
	Lease16Months   LeaseDuration = "16-months"
	Lease16Plus     LeaseDuration = "16-plus"
	LeaseIndefinite LeaseDuration = "indefinite"
)

// LeaseDurations lists the known durations from shortest to longest.
var LeaseDurations = []LeaseDuration{
	Lease4Months,
	Lease8Months,
	Lease12Months,
	Lease12Plus,
	Lease16Months,
	Lease16Plus,
	LeaseIndefinite,
}

func (l LeaseDuration) Valid() bool {
	for _, d := range LeaseDurations {
		if d == l {
			return true
		}
	}
	return false
}
