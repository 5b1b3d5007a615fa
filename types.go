package rds

import "time"

// Variant distinguishes the RDS (IEC 62106, Europe) and RBDS (Radio
// Broadcast Data System, North America) PTY interpretation tables. It is
// fixed for the lifetime of a Decoder.
type Variant int

const (
	RDS Variant = iota
	RBDS
)

func (v Variant) String() string {
	if v == RBDS {
		return "RBDS"
	}
	return "RDS"
}

// Block identifiers as carried in a RawBlock's status byte. C' (block-id 4)
// is treated identically to C everywhere in the assembler.
const (
	BlockA  = 0
	BlockB  = 1
	BlockC  = 2
	BlockD  = 3
	BlockCp = 4
)

// Status byte layout for RawBlock: the block id occupies the low 3 bits,
// followed by the two error flags the upstream driver supplies.
const (
	blockIDMask          = 0x07
	blockStatusCorrected = 1 << 3
	blockStatusBad       = 1 << 4
)

// RawBlock is one 16-bit payload unit as received from the tuner
// demodulator, plus the block-id and error flags the driver attaches to it.
type RawBlock struct {
	Msb, Lsb byte
	Status   byte
}

// NewRawBlock builds a RawBlock from its wire fields.
func NewRawBlock(msb, lsb byte, blockID int, corrected, uncorrectable bool) RawBlock {
	status := byte(blockID) & blockIDMask
	if corrected {
		status |= blockStatusCorrected
	}
	if uncorrectable {
		status |= blockStatusBad
	}
	return RawBlock{Msb: msb, Lsb: lsb, Status: status}
}

// BlockID reports the block-id carried in the status byte. Values 5..7 are
// not produced by valid upstream drivers and are treated as errors by the
// assembler.
func (b RawBlock) BlockID() int { return int(b.Status & blockIDMask) }

// Corrected reports whether the upstream driver flagged this block as
// error-corrected.
func (b RawBlock) Corrected() bool { return b.Status&blockStatusCorrected != 0 }

// Uncorrectable reports whether the upstream driver flagged this block as
// unrecoverable.
func (b RawBlock) Uncorrectable() bool { return b.Status&blockStatusBad != 0 }

// Group is one fully assembled RDS group: the invariant parts decoded from
// blocks A and B, plus the raw bytes of blocks C and D stashed for the
// group-type dispatcher.
type Group struct {
	PI       uint16
	GroupID  uint8 // 0-15
	Version  byte  // 'A' or 'B'
	DataBLsb uint8 // 5 low bits of block B

	DataCMsb, DataCLsb byte
	DataDMsb, DataDLsb byte
}

// FieldMask is a bitset of public State fields, returned by Decoder.Add to
// report which fields a just-completed group updated.
type FieldMask uint32

const (
	FieldPI FieldMask = 1 << iota
	FieldPTY
	FieldTP
	FieldTA
	FieldMS
	FieldPS
	FieldRT
	FieldDI
	FieldAF
	FieldECC
	FieldLC
	FieldPTYN
	FieldTime
	FieldODA
	FieldTMCSingleGroup
	FieldTMCMultiGroup
	FieldTMCSystem
)

// Has reports whether mask contains every bit of other.
func (m FieldMask) Has(other FieldMask) bool { return m&other == other }

// Any reports whether mask contains any bit of other.
func (m FieldMask) Any(other FieldMask) bool { return m&other != 0 }

// Decoder identification flags, one bit per DI segment (0..3).
const (
	DIStereo = 1 << iota
	DIArtificialHead
	DICompressed
	DIStaticPTY
)

// Capacity limits. All decoder buffers are fixed-size and allocation-free
// after construction; once a limit is reached, further entries are
// silently dropped (spec.md §7).
const (
	MaxAF             = 25 // IEC 62106 §6.2.1.6: announced AF count is 0..25
	MaxODA            = 16 // one slot per group id in practice (0-15)
	MaxTMCAdditional  = 16
	tmcOptionalSlots  = 4
	tmcOptionalBits   = 28 // used bits per 32-bit optional_tmc slot
)

// AFSet is the deduplicated set of alternative frequencies announced for
// the currently tuned program (group 0A, version A only).
type AFSet struct {
	Frequencies [MaxAF]uint32
	Count       int
	Announced   int // 0 until the AF count has been announced
}

func (a *AFSet) reset() { *a = AFSet{} }

// add inserts freq if it isn't already present and there is room, bounded
// by both MaxAF and the announced count. Reports whether it was added.
func (a *AFSet) add(freq uint32) bool {
	if freq == 0 {
		return false
	}
	if a.Count >= MaxAF {
		return false
	}
	if a.Announced != 0 && a.Count >= a.Announced {
		return false
	}
	for i := 0; i < a.Count; i++ {
		if a.Frequencies[i] == freq {
			return false
		}
	}
	a.Frequencies[a.Count] = freq
	a.Count++
	return true
}

func (a *AFSet) complete() bool {
	return a.Announced != 0 && a.Count >= a.Announced
}

// ODAEntry announces a non-standard application carried on a specific
// group id (group 3A).
type ODAEntry struct {
	GroupID uint8
	Version byte // 'A' or 'B'
	AID     uint16
}

// ODASet holds up to MaxODA simultaneously announced open-data
// applications, replaced in place per group id.
type ODASet struct {
	Entries [MaxODA]ODAEntry
	Count   int
}

func (o *ODASet) reset() { *o = ODASet{} }

// upsert adds or replaces the ODA entry for e.GroupID. Reports whether the
// set actually changed.
func (o *ODASet) upsert(e ODAEntry) bool {
	for i := 0; i < o.Count; i++ {
		if o.Entries[i].GroupID == e.GroupID {
			if o.Entries[i] == e {
				return false
			}
			o.Entries[i] = e
			return true
		}
	}
	if o.Count >= MaxODA {
		return false
	}
	o.Entries[o.Count] = e
	o.Count++
	return true
}

// TMCAdditionalField is one (label, data) pair extracted from the optional
// bit array of a multi-group TMC message, per ISO 14819-1 §5.5.1.
type TMCAdditionalField struct {
	Label uint8
	Data  uint16
}

// TMCMessage is a single decoded traffic message, either single-group or
// reassembled from a multi-group sequence.
//
// Location mirrors the original C decoder's observed (and, per spec.md §9,
// deliberately un-"fixed") bit layout: it is built from block D's msb and
// block C's lsb (data_d_msb<<8 | data_c_lsb), not from block D's msb/lsb as
// the ISO 14819-1 location-table reference would suggest. Block D's lsb is
// not consulted. A re-implementer comparing against real broadcasts should
// be aware of this before assuming a decoding bug.
type TMCMessage struct {
	Duration        uint8
	FollowDiversion bool
	NegDirection    bool
	Extent          uint8
	Event           uint16
	Location        uint16

	Additional    [MaxTMCAdditional]TMCAdditionalField
	AdditionalLen int
}

// TMC holds the last accepted TMC message and the TMC system parameters
// announced in type-3A groups.
type TMC struct {
	Message TMCMessage

	LTN          uint8
	AFI          bool
	EnhancedMode bool
	MGS          uint8
	Gap          uint8
	SID          uint8
	TA, TW, TD   uint8
}

// Statistics are monotonic reception counters; they never decrease except
// on a full Reset (reset_statistics=true).
type Statistics struct {
	Blocks          uint64
	BlockErrors     uint64
	BlocksCorrected uint64
	Groups          uint64
	GroupErrors     uint64
	GroupTypeCount  [16]uint64
}

// State is the public, incrementally-updated decoder snapshot.
type State struct {
	PI   uint16
	PTY  uint8
	PS   [8]byte
	RT   [64]byte
	RTLength int
	DI   uint8
	ECC  uint8
	LC   uint8
	PTYN [8]byte

	// Time is the decoded local broadcast time (MJD + UTC + half-hour
	// offset), expressed with the station-supplied GMT offset attached as
	// its Location. Zero value until the TIME field validates.
	Time time.Time

	TP, TA, MS bool

	AF  AFSet
	ODA ODASet
	TMC TMC

	ValidFields FieldMask
	Statistics  Statistics

	rtABFlag   bool
	ptynABFlag bool
}
