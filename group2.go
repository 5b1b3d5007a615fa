package rds

// decodeGroup2 decodes radio text: up to 64 characters (version A, 4 per
// segment) or 32 characters (version B, 2 per segment), built from
// segments that must arrive in order starting at 0. An A/B flag transition
// clears the buffer; a 0x0D byte anywhere in it terminates the message
// early (spec.md §4.5).
func (d *Decoder) decodeGroup2(grp Group) FieldMask {
	var updated FieldMask

	segment := int(grp.DataBLsb & 0x0f)
	abFlag := grp.DataBLsb&0x10 != 0

	if abFlag != d.rtABFlag {
		d.rtABFlag = abFlag
		d.newRT = [64]byte{}
		d.RT = [64]byte{}
		d.ValidFields &^= FieldRT
		updated |= FieldRT
		d.nextRTSeg = 0
	}

	if grp.Version == 'A' {
		if segment == 0 || segment == d.nextRTSeg {
			d.newRT[segment*4] = grp.DataCMsb
			d.newRT[segment*4+1] = grp.DataCLsb
			d.newRT[segment*4+2] = grp.DataDMsb
			d.newRT[segment*4+3] = grp.DataDLsb
			d.nextRTSeg = segment + 1
			if segment == 0x0f {
				d.RTLength = 64
				d.ValidFields |= FieldRT
				if d.RT != d.newRT {
					d.RT = d.newRT
					updated |= FieldRT
				}
				d.nextRTSeg = 0
			}
		}
	} else {
		if segment == 0 || segment == d.nextRTSeg {
			d.newRT[segment*2] = grp.DataDMsb
			d.newRT[segment*2+1] = grp.DataDLsb
			// Block C (PI repeated) is ignored in version B.
			d.nextRTSeg = segment + 1
			if segment == 0x0f {
				d.RTLength = 32
				d.ValidFields |= FieldRT
				updated |= FieldRT
				if d.RT != d.newRT {
					d.RT = d.newRT
					updated |= FieldRT
				}
				d.nextRTSeg = 0
			}
		}
	}

	// A carriage return anywhere in the staged buffer ends the message
	// early, regardless of whether this segment just completed it.
	for i := 0; i < 64; i++ {
		if d.newRT[i] == 0x0d {
			d.newRT[i] = 0
			d.RTLength = i
			d.ValidFields |= FieldRT
			if d.RT != d.newRT {
				d.RT = d.newRT
				updated |= FieldRT
			}
			d.nextRTSeg = 0
		}
	}

	return updated
}
