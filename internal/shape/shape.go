package shape

import "fmt"

// Shape identifies the classification of an annotated symbol.
// The zero value None means "no valid shape".
type Shape uint16

const (
	None Shape = iota

	// Staff-level and structural marks
	Brace
	Bracket
	BarlineSingle
	BarlineDouble
	BarlineFinal
	RepeatDots
	Segno
	Coda

	// Clefs
	GClef
	GClefChange
	CClefAlto
	CClefAltoChange
	CClefTenor
	CClefTenorChange
	FClef
	FClefChange
	UnpitchedPercussionClef1

	// Time signatures
	TimeSig0
	TimeSig1
	TimeSig2
	TimeSig3
	TimeSig4
	TimeSig5
	TimeSig6
	TimeSig7
	TimeSig8
	TimeSig9
	TimeSigCommon
	TimeSigCutCommon

	// Note heads and their satellites
	NoteheadBlack
	NoteheadBlackSmall
	NoteheadHalf
	NoteheadHalfSmall
	NoteheadWhole
	NoteheadWholeSmall
	NoteheadDoubleWhole
	NoteheadDoubleWholeSmall
	AugmentationDot
	Stem
	LegerLine
	Beam
	BeamHook
	Tie
	Slur

	// Flags
	Flag8thUp
	Flag8thUpSmall
	Flag16thUp
	Flag32ndUp
	Flag64thUp
	Flag8thDown
	Flag8thDownSmall
	Flag16thDown
	Flag32ndDown
	Flag64thDown

	// Accidentals and key signatures
	AccidentalFlat
	AccidentalFlatSmall
	AccidentalNatural
	AccidentalNaturalSmall
	AccidentalSharp
	AccidentalSharpSmall
	AccidentalDoubleSharp
	AccidentalDoubleFlat
	KeyFlat
	KeyNatural
	KeySharp

	// Articulations
	ArticAccentAbove
	ArticAccentBelow
	ArticStaccatoAbove
	ArticStaccatoBelow
	ArticTenutoAbove
	ArticTenutoBelow
	ArticStaccatissimoAbove
	ArticStaccatissimoBelow
	ArticMarcatoAbove
	ArticMarcatoBelow

	// Holds and pauses
	FermataAbove
	FermataBelow
	BreathMarkComma
	Caesura

	// Rests
	RestMaxima
	RestLonga
	RestDoubleWhole
	RestWhole
	RestHalf
	RestQuarter
	Rest8th
	Rest16th
	Rest32nd
	Rest64th
	Rest128th

	// Dynamics
	DynamicPiano
	DynamicMezzo
	DynamicForte
	DynamicPP
	DynamicMP
	DynamicMF
	DynamicFF
	DynamicSforzando
	DynamicCrescendoHairpin
	DynamicDiminuendoHairpin

	// Ornaments and techniques
	OrnamentTrill
	OrnamentTurn
	OrnamentTurnInverted
	OrnamentMordent
	OrnamentShortTrill
	StringsDownBow
	StringsUpBow
	Arpeggiato
	GraceNoteAcciaccaturaStemUp
	GraceNoteAppoggiaturaStemUp

	// Pedals, tuplets, fingering
	KeyboardPedalPed
	KeyboardPedalUp
	Tuplet3
	Tuplet6
	Fingering0
	Fingering1
	Fingering2
	Fingering3
	Fingering4
	Fingering5

	// Repeats
	RepeatLeft
	RepeatRight
	Repeat1Bar

	shapeCount
)

var names = [shapeCount]string{
	None: "none",

	Brace:         "brace",
	Bracket:       "bracket",
	BarlineSingle: "barlineSingle",
	BarlineDouble: "barlineDouble",
	BarlineFinal:  "barlineFinal",
	RepeatDots:    "repeatDots",
	Segno:         "segno",
	Coda:          "coda",

	GClef:                    "gClef",
	GClefChange:              "gClefChange",
	CClefAlto:                "cClefAlto",
	CClefAltoChange:          "cClefAltoChange",
	CClefTenor:               "cClefTenor",
	CClefTenorChange:         "cClefTenorChange",
	FClef:                    "fClef",
	FClefChange:              "fClefChange",
	UnpitchedPercussionClef1: "unpitchedPercussionClef1",

	TimeSig0:         "timeSig0",
	TimeSig1:         "timeSig1",
	TimeSig2:         "timeSig2",
	TimeSig3:         "timeSig3",
	TimeSig4:         "timeSig4",
	TimeSig5:         "timeSig5",
	TimeSig6:         "timeSig6",
	TimeSig7:         "timeSig7",
	TimeSig8:         "timeSig8",
	TimeSig9:         "timeSig9",
	TimeSigCommon:    "timeSigCommon",
	TimeSigCutCommon: "timeSigCutCommon",

	NoteheadBlack:            "noteheadBlack",
	NoteheadBlackSmall:       "noteheadBlackSmall",
	NoteheadHalf:             "noteheadHalf",
	NoteheadHalfSmall:        "noteheadHalfSmall",
	NoteheadWhole:            "noteheadWhole",
	NoteheadWholeSmall:       "noteheadWholeSmall",
	NoteheadDoubleWhole:      "noteheadDoubleWhole",
	NoteheadDoubleWholeSmall: "noteheadDoubleWholeSmall",
	AugmentationDot:          "augmentationDot",
	Stem:                     "stem",
	LegerLine:                "legerLine",
	Beam:                     "beam",
	BeamHook:                 "beamHook",
	Tie:                      "tie",
	Slur:                     "slur",

	Flag8thUp:        "flag8thUp",
	Flag8thUpSmall:   "flag8thUpSmall",
	Flag16thUp:       "flag16thUp",
	Flag32ndUp:       "flag32ndUp",
	Flag64thUp:       "flag64thUp",
	Flag8thDown:      "flag8thDown",
	Flag8thDownSmall: "flag8thDownSmall",
	Flag16thDown:     "flag16thDown",
	Flag32ndDown:     "flag32ndDown",
	Flag64thDown:     "flag64thDown",

	AccidentalFlat:         "accidentalFlat",
	AccidentalFlatSmall:    "accidentalFlatSmall",
	AccidentalNatural:      "accidentalNatural",
	AccidentalNaturalSmall: "accidentalNaturalSmall",
	AccidentalSharp:        "accidentalSharp",
	AccidentalSharpSmall:   "accidentalSharpSmall",
	AccidentalDoubleSharp:  "accidentalDoubleSharp",
	AccidentalDoubleFlat:   "accidentalDoubleFlat",
	KeyFlat:                "keyFlat",
	KeyNatural:             "keyNatural",
	KeySharp:               "keySharp",

	ArticAccentAbove:        "articAccentAbove",
	ArticAccentBelow:        "articAccentBelow",
	ArticStaccatoAbove:      "articStaccatoAbove",
	ArticStaccatoBelow:      "articStaccatoBelow",
	ArticTenutoAbove:        "articTenutoAbove",
	ArticTenutoBelow:        "articTenutoBelow",
	ArticStaccatissimoAbove: "articStaccatissimoAbove",
	ArticStaccatissimoBelow: "articStaccatissimoBelow",
	ArticMarcatoAbove:       "articMarcatoAbove",
	ArticMarcatoBelow:       "articMarcatoBelow",

	FermataAbove:    "fermataAbove",
	FermataBelow:    "fermataBelow",
	BreathMarkComma: "breathMarkComma",
	Caesura:         "caesura",

	RestMaxima:      "restMaxima",
	RestLonga:       "restLonga",
	RestDoubleWhole: "restDoubleWhole",
	RestWhole:       "restWhole",
	RestHalf:        "restHalf",
	RestQuarter:     "restQuarter",
	Rest8th:         "rest8th",
	Rest16th:        "rest16th",
	Rest32nd:        "rest32nd",
	Rest64th:        "rest64th",
	Rest128th:       "rest128th",

	DynamicPiano:             "dynamicPiano",
	DynamicMezzo:             "dynamicMezzo",
	DynamicForte:             "dynamicForte",
	DynamicPP:                "dynamicPP",
	DynamicMP:                "dynamicMP",
	DynamicMF:                "dynamicMF",
	DynamicFF:                "dynamicFF",
	DynamicSforzando:         "dynamicSforzando",
	DynamicCrescendoHairpin:  "dynamicCrescendoHairpin",
	DynamicDiminuendoHairpin: "dynamicDiminuendoHairpin",

	OrnamentTrill:               "ornamentTrill",
	OrnamentTurn:                "ornamentTurn",
	OrnamentTurnInverted:        "ornamentTurnInverted",
	OrnamentMordent:             "ornamentMordent",
	OrnamentShortTrill:          "ornamentShortTrill",
	StringsDownBow:              "stringsDownBow",
	StringsUpBow:                "stringsUpBow",
	Arpeggiato:                  "arpeggiato",
	GraceNoteAcciaccaturaStemUp: "graceNoteAcciaccaturaStemUp",
	GraceNoteAppoggiaturaStemUp: "graceNoteAppoggiaturaStemUp",

	KeyboardPedalPed: "keyboardPedalPed",
	KeyboardPedalUp:  "keyboardPedalUp",
	Tuplet3:          "tuplet3",
	Tuplet6:          "tuplet6",
	Fingering0:       "fingering0",
	Fingering1:       "fingering1",
	Fingering2:       "fingering2",
	Fingering3:       "fingering3",
	Fingering4:       "fingering4",
	Fingering5:       "fingering5",

	RepeatLeft:  "repeatLeft",
	RepeatRight: "repeatRight",
	Repeat1Bar:  "repeat1Bar",
}

// Valid reports whether s is a member of the vocabulary other than None.
func (s Shape) Valid() bool {
	return s > None && s < shapeCount
}

// String returns the canonical token of s.
func (s Shape) String() string {
	if s < shapeCount {
		return names[s]
	}
	return fmt.Sprintf("Shape(%d)", uint16(s))
}

// All returns every valid shape in declaration order.
func All() []Shape {
	out := make([]Shape, 0, int(shapeCount)-1)
	for s := None + 1; s < shapeCount; s++ {
		out = append(out, s)
	}
	return out
}
