package domain

type RecordType string

const (
	RecordPumping RecordType = "pumping"
	RecordFeeding RecordType = "feeding"
	RecordSleep   RecordType = "sleep"
)

type PumpSide string

const (
	SideLeft  PumpSide = "left"
	SideRight PumpSide = "right"
	SideBoth  PumpSide = "both"
)

type FeedType string

const (
	FeedFormula FeedType = "formula"
	FeedBreast  FeedType = "breast"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ValidRecordTypes is the canonical set of accepted record type strings.
var ValidRecordTypes = map[RecordType]bool{
	RecordPumping: true, RecordFeeding: true, RecordSleep: true,
}

// ValidPumpSides is the canonical set of accepted pumping sides.
var ValidPumpSides = map[PumpSide]bool{
	SideLeft: true, SideRight: true, SideBoth: true,
}

// ValidFeedTypes is the canonical set of accepted feed types.
var ValidFeedTypes = map[FeedType]bool{
	FeedFormula: true, FeedBreast: true,
}

// ValidGenders is the canonical set of accepted genders.
var ValidGenders = map[Gender]bool{
	GenderMale: true, GenderFemale: true,
}
