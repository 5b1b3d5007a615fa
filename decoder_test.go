package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildGroup assembles the four raw blocks for one RDS group from its
// logical fields, matching the bit layout decodeBlockA/decodeBlockB expect.
func buildGroup(pi uint16, groupID uint8, versionB bool, tp bool, pty uint8, dataBLsb uint8, cMsb, cLsb, dMsb, dLsb byte) [4]RawBlock {
	bMsb := groupID<<4 | boolBit(versionB)<<3 | boolBit(tp)<<2 | (pty >> 3)
	bLsb := (pty&0x07)<<5 | (dataBLsb & 0x1f)

	return [4]RawBlock{
		NewRawBlock(byte(pi>>8), byte(pi), BlockA, false, false),
		NewRawBlock(bMsb, bLsb, BlockB, false, false),
		NewRawBlock(cMsb, cLsb, BlockC, false, false),
		NewRawBlock(dMsb, dLsb, BlockD, false, false),
	}
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func pushGroup(d *Decoder, blocks [4]RawBlock) FieldMask {
	var mask FieldMask
	for _, b := range blocks {
		mask = d.Add(b)
	}
	return mask
}

func TestPIRequiresTwoConsecutiveReceptions(t *testing.T) {
	d := New(RDS)

	blocks := buildGroup(0x1234, 0, false, false, 0, 0, 0, 0, 0, 0)
	mask := pushGroup(d, blocks)
	assert.False(t, mask.Has(FieldPI), "PI must not validate on first reception")
	assert.Equal(t, uint16(0), d.PI)

	mask = pushGroup(d, blocks)
	assert.True(t, mask.Has(FieldPI))
	assert.Equal(t, uint16(0x1234), d.PI)

	// A differing PI resets validation; it takes two more matching
	// receptions before it replaces the old one.
	other := buildGroup(0x5678, 0, false, false, 0, 0, 0, 0, 0, 0)
	mask = pushGroup(d, other)
	assert.False(t, mask.Has(FieldPI))
	assert.Equal(t, uint16(0x1234), d.PI, "stale PI must survive until the new one validates")

	mask = pushGroup(d, other)
	assert.True(t, mask.Has(FieldPI))
	assert.Equal(t, uint16(0x5678), d.PI)
}

func TestProgramServiceNameAssembly(t *testing.T) {
	d := New(RDS)
	name := "MY_RDS_1"

	// Two full cycles of segments 0..3: the first stages every character,
	// the second repeats each one so all eight positions validate together
	// (a mismatch at any position clears validity for all of them).
	for pass := 0; pass < 2; pass++ {
		for segment := 0; segment < 4; segment++ {
			c1, c2 := name[segment*2], name[segment*2+1]
			blocks := buildGroup(0x1234, 0, false, false, 0, uint8(segment), 0, 0, c1, c2)
			pushGroup(d, blocks)
		}
	}

	require.True(t, d.ValidFields.Has(FieldPS))
	assert.Equal(t, name, string(d.PS[:]))
}

func TestRadioTextTerminatesEarlyOnCarriageReturn(t *testing.T) {
	d := New(RDS)

	seg0 := buildGroup(0x1234, 2, false, false, 0, 0, 'H', 'e', 'l', 'l')
	seg1 := buildGroup(0x1234, 2, false, false, 0, 1, 'o', '\r', 0, 0)

	pushGroup(d, seg0)
	mask := pushGroup(d, seg1)

	require.True(t, mask.Has(FieldRT))
	assert.Equal(t, "Hello", string(d.RT[:d.RTLength]))
}

func TestAlternativeFrequencyList(t *testing.T) {
	d := New(RDS)

	announce := buildGroup(0x1234, 0, false, false, 0, 0, 224+2, 0, 0, 0)
	pushGroup(d, announce)

	first := buildGroup(0x1234, 0, false, false, 0, 0, 1, 5, 0, 0)
	mask := pushGroup(d, first)

	require.True(t, mask.Has(FieldAF))
	assert.Equal(t, uint32(87600000), d.AF.Frequencies[0])
	assert.Equal(t, uint32(88000000), d.AF.Frequencies[1])
	assert.Equal(t, 2, d.AF.Count)
}

func TestOpenDataApplicationAnnouncementValidates(t *testing.T) {
	d := New(RDS)

	// group id 5 (low nibble bits 1-4 of data B lsb), version A, AID in
	// block D (a non-TMC AID, so this exercises plain ODA bookkeeping only).
	dataBLsb := uint8(5 << 1)
	group := buildGroup(0x1234, 3, false, false, 0, dataBLsb, 0, 0, 0x12, 0x34)

	mask := pushGroup(d, group)

	require.True(t, mask.Has(FieldODA))
	require.True(t, d.ValidFields.Has(FieldODA))
	assert.Equal(t, uint16(0x1234), d.ODA.Entries[0].AID)
}

func TestProgrammeTypeNameABFlagTransitionReportsChange(t *testing.T) {
	d := New(RDS)

	seg0 := buildGroup(0x1234, 10, false, false, 0, 0, 'R', 'o', 'c', 'k')
	seg1 := buildGroup(0x1234, 10, false, false, 0, 1, ' ', 'F', 'M', ' ')
	pushGroup(d, seg0)
	pushGroup(d, seg0)
	pushGroup(d, seg1)
	mask := pushGroup(d, seg1)
	require.True(t, mask.Has(FieldPTYN))
	assert.Equal(t, "Rock FM ", string(d.PTYN[:]))

	// Flipping the A/B flag must itself report FieldPTYN as changed, even
	// though no new segment data has arrived yet.
	flipped := buildGroup(0x1234, 10, false, false, 0, 0x10, 'J', 'a', 'z', 'z')
	mask = pushGroup(d, flipped)
	assert.True(t, mask.Has(FieldPTYN), "A/B transition must report PTYN as changed")
	assert.False(t, d.ValidFields.Has(FieldPTYN), "cleared PTYN is not valid until both halves settle again")
}

func TestTMCSingleGroupMessage(t *testing.T) {
	d := New(RDS)

	// block B lsb: bit3 (single group) set, bit4 (tuning info) clear.
	dataBLsb := uint8(1<<3) | 0x03 // duration = 3
	cMsb := byte(0x80 | 0x40 | (2 << 3) | 0x05) // follow-div, neg-dir, extent=2, event hi=5
	cLsb := byte(0x42)
	dMsb := byte(0x11)

	group := buildGroup(0x1234, 8, false, false, 0, dataBLsb, cMsb, cLsb, dMsb, 0x00)
	pushGroup(d, group) // stage for comparison
	mask := pushGroup(d, group)

	require.True(t, mask.Has(FieldTMCSingleGroup))
	assert.True(t, d.TMC.Message.FollowDiversion)
	assert.True(t, d.TMC.Message.NegDirection)
	assert.Equal(t, uint8(2), d.TMC.Message.Extent)
	assert.Equal(t, uint8(3), d.TMC.Message.Duration)
	assert.Equal(t, uint16(0x0542), d.TMC.Message.Event)
	assert.Equal(t, uint16(dMsb)<<8|uint16(cLsb), d.TMC.Message.Location)
}

func TestTMCMultiGroupReassemblyAndAdditionalFields(t *testing.T) {
	d := New(RDS)

	continuity := uint8(3)
	dataBLsb := continuity // single-group and tuning-info bits clear

	firstCMsb := byte(0x80 | 0x08 | (1 << 3) | 0x02) // first-group (bit 7, also read as follow-div), extent=1, event hi=2
	firstCLsb := byte(0x34)
	firstDMsb := byte(0x56)
	firstDLsb := byte(0x78)
	first := buildGroup(0x1234, 8, false, false, 0, dataBLsb, firstCMsb, firstCLsb, firstDMsb, firstDLsb)

	// second group: seq id 0 (last group), label 0 (3-bit data) encoded at
	// the very start of the optional bitstream.
	secondCMsb := byte(0x40 | 0x00<<4 | 0x00) // second-group, seq id 0, low nibble carries label/data high bits
	secondCLsb := byte(0x00)
	secondDMsb := byte(0x00)
	secondDLsb := byte(0x00)
	second := buildGroup(0x1234, 8, false, false, 0, dataBLsb, secondCMsb, secondCLsb, secondDMsb, secondDLsb)

	pushGroup(d, first)
	pushGroup(d, first) // validate via double reception
	pushGroup(d, second)
	mask := pushGroup(d, second) // validate via double reception, completes the message

	require.True(t, mask.Has(FieldTMCMultiGroup))
	assert.Equal(t, uint8(1), d.TMC.Message.Extent)
	assert.True(t, d.TMC.Message.FollowDiversion)

	// The all-zero 28-bit slot decodes as four (label 0, 3-bit data 0) pairs.
	assert.Equal(t, 4, d.TMC.Message.AdditionalLen)
	assert.Equal(t, TMCAdditionalField{Label: 0, Data: 0}, d.TMC.Message.Additional[0])
}
