package rds

// decodeGroup1 decodes slow labelling codes (version A only): extended
// country code (variant 0) and language code (variant 3), both validated
// by double reception (spec.md §4.4).
func (d *Decoder) decodeGroup1(grp Group) FieldMask {
	if grp.Version != 'A' {
		return 0
	}

	var updated FieldMask
	variant := (grp.DataCMsb >> 4) & 0x07

	switch variant {
	case 0:
		if v, ok := d.pendingECC.Observe(grp.DataCLsb); ok {
			d.ValidFields |= FieldECC
			if d.ECC != v {
				updated |= FieldECC
			}
			d.ECC = v
		}
	case 3:
		if v, ok := d.pendingLC.Observe(grp.DataCLsb); ok {
			d.ValidFields |= FieldLC
			updated |= FieldLC
			d.LC = v
		}
	}

	return updated
}
