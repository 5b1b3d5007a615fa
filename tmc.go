package rds

// additionalFieldLUT maps a 4-bit TMC additional-information label to the
// number of data bits that follow it (spec.md §4.8.3). Label 15 is reserved
// and carries no data; it is still read and discarded so the cursor stays
// aligned with whatever follows.
var additionalFieldLUT = [16]uint8{3, 3, 5, 5, 5, 8, 8, 8, 8, 11, 16, 16, 16, 16, 0, 0}

// decodeTMCSingleGroup decodes a self-contained TMC message carried
// entirely within one type-8A group (spec.md §4.8.1).
func (d *Decoder) decodeTMCSingleGroup(grp Group) FieldMask {
	var msg TMCMessage
	msg.Duration = grp.DataBLsb & 0x07
	msg.FollowDiversion = grp.DataCMsb&0x80 != 0
	msg.NegDirection = grp.DataCMsb&0x40 != 0
	msg.Extent = (grp.DataCMsb & 0x38) >> 3
	msg.Event = uint16(grp.DataCMsb&0x07)<<8 | uint16(grp.DataCLsb)
	// Location mixes block D's msb with block C's lsb rather than the more
	// natural D msb/D lsb pair -- preserved exactly as the source decoder
	// computes it (spec.md §9).
	msg.Location = uint16(grp.DataDMsb)<<8 | uint16(grp.DataCLsb)

	d.TMC.Message = msg
	d.ValidFields |= FieldTMCSingleGroup
	d.ValidFields &^= FieldTMCMultiGroup
	return FieldTMCSingleGroup
}

// decodeTMCMultiGroup reassembles a TMC message spread across a sequence of
// type-8A groups sharing a continuity id (spec.md §4.8.2). The sequence id
// counts down to zero on the final group of the sequence.
func (d *Decoder) decodeTMCMultiGroup(grp Group) FieldMask {
	firstGroup := grp.DataCMsb&0x80 != 0
	secondGroup := grp.DataCMsb&0x40 != 0
	seqID := (grp.DataCMsb & 0x30) >> 4
	continuityID := grp.DataBLsb & 0x07

	if firstGroup {
		d.tmcStaging = TMCMessage{
			FollowDiversion: grp.DataCMsb&0x80 != 0,
			NegDirection:    grp.DataCMsb&0x40 != 0,
			Extent:          (grp.DataCMsb & 0x38) >> 3,
			Event:           uint16(grp.DataCMsb&0x07)<<8 | uint16(grp.DataCLsb),
			Location:        uint16(grp.DataDMsb)<<8 | uint16(grp.DataCLsb),
		}
		d.tmcContinuityID = continuityID
		d.tmcOptionalLen = 0
		return 0
	}

	if continuityID != d.tmcContinuityID {
		return 0
	}

	slot := tmcOptionalSlot(grp)
	var complete bool

	switch {
	case secondGroup:
		d.tmcGroupSeqID = seqID
		d.tmcOptional[0] = slot
		d.tmcOptionalLen = 1
		complete = seqID == 0
	case d.tmcOptionalLen > 0 && d.tmcOptionalLen < tmcOptionalSlots && seqID == d.tmcGroupSeqID-1:
		d.tmcGroupSeqID = seqID
		d.tmcOptional[d.tmcOptionalLen] = slot
		d.tmcOptionalLen++
		complete = seqID == 0
	default:
		return 0
	}

	if !complete {
		return 0
	}

	msg := d.tmcStaging
	decodeTMCAdditional(&msg, d.tmcOptional[:d.tmcOptionalLen])

	d.TMC.Message = msg
	d.ValidFields |= FieldTMCMultiGroup
	d.ValidFields &^= FieldTMCSingleGroup
	return FieldTMCMultiGroup
}

// tmcOptionalSlot packs the low nibble of C msb (its top nibble carries the
// group-role/sequence flags handled above, not payload) together with C
// lsb, D msb and D lsb into a single 28-bit value, right-aligned.
func tmcOptionalSlot(grp Group) uint32 {
	return uint32(grp.DataCMsb&0x0f)<<24 |
		uint32(grp.DataCLsb)<<16 |
		uint32(grp.DataDMsb)<<8 |
		uint32(grp.DataDLsb)
}

// decodeTMCAdditional walks the reassembled optional slots as a stream of
// (4-bit label, variable-length data) pairs, per spec.md §4.8.3. This
// replaces the original decoder's inline pointer arithmetic -- which
// recomputes byte/bit offsets per field and is flagged as unreliable for
// labels whose data straddles a slot boundary (spec.md §9) -- with a plain
// bitCursor that handles the straddling generically.
func decodeTMCAdditional(msg *TMCMessage, slots []uint32) {
	cursor := newBitCursor(slots)
	msg.AdditionalLen = 0

	for {
		label, ok := cursor.read(4)
		if !ok {
			break
		}
		dataLen := int(additionalFieldLUT[label])
		data, ok := cursor.read(dataLen)
		if !ok {
			break
		}
		if label == 15 {
			continue
		}
		if msg.AdditionalLen >= MaxTMCAdditional {
			break
		}
		msg.Additional[msg.AdditionalLen] = TMCAdditionalField{Label: uint8(label), Data: data}
		msg.AdditionalLen++
	}
}
