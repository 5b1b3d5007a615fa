package rds

import "github.com/charmbracelet/log"

// assemblerState is the four-state block assembler of spec.md §4.1.
type assemblerState int

const (
	stateEmpty assemblerState = iota
	stateAReceived
	stateBReceived
	stateCReceived
)

// Decoder reassembles a stream of raw RDS blocks into groups and decodes
// them into a validated State snapshot. It is single-threaded and
// synchronous: Add returns once any group it completes has been decoded.
// A Decoder owns all of its buffers and allocates nothing after
// construction; concurrent callers must serialize their own access.
type Decoder struct {
	State

	variant Variant
	id      string
	logger  *log.Logger

	assembler assemblerState
	raw       [4]RawBlock
	lastGroup Group

	// Pre-decoder validation buffers (spec.md §4.2).
	pendingPI  Pending[uint16]
	pendingPTY Pending[uint8]

	// Group 0 staging (spec.md §4.3).
	ps           psBuffer
	newDI        uint8
	nextDISeg    int

	// Group 1 staging (spec.md §4.4).
	pendingECC Pending[uint8]
	pendingLC  Pending[uint8]

	// Group 2 staging (spec.md §4.5).
	newRT        [64]byte
	nextRTSeg    int

	// Group 4 staging (spec.md §4.7).
	pendingMJD  Pending[uint32]
	utcHour     uint8
	utcMinute   uint8
	utcOffset   uint8

	// Group 8/TMC staging (spec.md §4.8, §4.9).
	prevTMCGroup    Group
	havePrevTMC     bool
	prevTMCSysGroup Group
	havePrevTMCSys  bool
	tmcContinuityID uint8
	tmcGroupSeqID   uint8
	tmcOptional     [tmcOptionalSlots]uint32
	tmcOptionalLen  int
	tmcStaging      TMCMessage

	// Group 10 staging (spec.md §4.10).
	ptyn ptynHalves
}

// New creates a decoder for the given RDS/RBDS variant. The variant is
// immutable for the lifetime of the instance (spec.md §3 invariant 5).
func New(variant Variant, opts ...Option) *Decoder {
	d := &Decoder{variant: variant}
	for _, opt := range opts {
		opt(d)
	}
	if d.id == "" {
		d.id = newID()
	}
	return d
}

// Variant reports whether this decoder interprets PTY as RDS or RBDS.
func (d *Decoder) Variant() Variant { return d.variant }

// Group returns the last fully assembled group, for callers that need the
// raw decoded view rather than the accumulated State (spec.md §6).
func (d *Decoder) Group() Group { return d.lastGroup }

// Reset clears all decoder state. When resetStatistics is false the
// reception counters survive the reset (spec.md §3 invariant 4); the
// RDS/RBDS variant always survives.
func (d *Decoder) Reset(resetStatistics bool) {
	stats := d.Statistics
	variant := d.variant
	id := d.id
	logger := d.logger

	*d = Decoder{}
	d.variant = variant
	d.id = id
	d.logger = logger
	if !resetStatistics {
		d.Statistics = stats
	}
	d.debugf("reset resetStatistics=%v", resetStatistics)
}

// Add ingests one raw block. It returns a bitmask of the State fields
// updated by the group it just completed, or 0 if no group was completed
// or the completed group produced no change worth reporting.
func (d *Decoder) Add(block RawBlock) FieldMask {
	d.Statistics.Blocks++

	blockID := block.BlockID()
	if block.Uncorrectable() {
		blockID = -1
		d.Statistics.BlockErrors++
	} else if block.Corrected() {
		d.Statistics.BlocksCorrected++
	}

	switch d.assembler {
	case stateEmpty:
		if blockID == BlockA {
			d.assembler = stateAReceived
			d.raw = [4]RawBlock{}
			d.raw[0] = block
		} else {
			d.Statistics.GroupErrors++
		}

	case stateAReceived:
		if blockID == BlockB {
			d.assembler = stateBReceived
			d.raw[1] = block
		} else {
			d.Statistics.GroupErrors++
			d.assembler = stateEmpty
		}

	case stateBReceived:
		if blockID == BlockC || blockID == BlockCp {
			d.assembler = stateCReceived
			d.raw[2] = block
		} else {
			d.Statistics.GroupErrors++
			d.assembler = stateEmpty
		}

	case stateCReceived:
		d.assembler = stateEmpty
		if blockID == BlockD {
			d.raw[3] = block
			d.Statistics.Groups++
			return d.decodeGroup()
		}
		d.Statistics.GroupErrors++

	default:
		d.Statistics.GroupErrors++
		d.assembler = stateEmpty
	}

	return 0
}

// decodeGroup runs the pre-decoder and the per-group-type dispatcher over
// the four raw blocks staged in d.raw, and is only called once all four
// have been received in order with no error flags.
func (d *Decoder) decodeGroup() FieldMask {
	var grp Group
	updated := d.decodeBlockA(&grp, d.raw[0])
	updated |= d.decodeBlockB(&grp, d.raw[1])
	grp.DataCMsb, grp.DataCLsb = d.raw[2].Msb, d.raw[2].Lsb
	grp.DataDMsb, grp.DataDLsb = d.raw[3].Msb, d.raw[3].Lsb

	d.lastGroup = grp
	d.Statistics.GroupTypeCount[grp.GroupID]++

	switch grp.GroupID {
	case 0:
		updated |= d.decodeGroup0(grp)
	case 1:
		updated |= d.decodeGroup1(grp)
	case 2:
		updated |= d.decodeGroup2(grp)
	case 3:
		updated |= d.decodeGroup3(grp)
	case 4:
		updated |= d.decodeGroup4(grp)
	case 8:
		updated |= d.decodeGroup8(grp)
	case 10:
		updated |= d.decodeGroup10(grp)
	default:
		// 5, 6, 7, 9, 11-15: counted above, no decoder defined.
	}

	d.debugf("group id=%d version=%c updated=%#x", grp.GroupID, grp.Version, uint32(updated))
	return updated
}

func (d *Decoder) debugf(format string, args ...any) {
	if d.logger == nil {
		return
	}
	d.logger.Debugf("[%s] "+format, append([]any{d.id}, args...)...)
}
