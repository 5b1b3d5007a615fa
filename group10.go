package rds

// decodeGroup10 decodes the Programme Type Name carried across the two
// halves of a version-A type-10A group (spec.md §4.6). Each half must
// settle on a stable value before it is considered valid; the name is
// published only once both halves agree.
func (d *Decoder) decodeGroup10(grp Group) FieldMask {
	if grp.Version != 'A' {
		return 0
	}

	segment := int(grp.DataBLsb & 0x01)
	abFlag := grp.DataBLsb&0x10 != 0

	var updated FieldMask
	if abFlag != d.ptynABFlag {
		d.ptynABFlag = abFlag
		d.ptyn.reset()
		d.PTYN = [8]byte{}
		d.ValidFields &^= FieldPTYN
		updated |= FieldPTYN
	}

	d.ptyn.observe(segment, [4]byte{grp.DataCMsb, grp.DataCLsb, grp.DataDMsb, grp.DataDLsb})

	if !d.ptyn.bothValid() {
		return updated
	}

	combined := d.ptyn.combined()
	if d.PTYN == combined {
		return updated
	}
	d.PTYN = combined
	d.ValidFields |= FieldPTYN
	return updated | FieldPTYN
}
