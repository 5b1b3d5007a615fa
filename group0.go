package rds

// decodeGroup0 decodes basic tuning and switching information: TA/MS
// flags, the program service name, decoder identification, and (version A
// only) alternative frequencies (spec.md §4.3).
func (d *Decoder) decodeGroup0(grp Group) FieldMask {
	var updated FieldMask

	ta := grp.DataBLsb&0x10 != 0
	if d.TA != ta {
		d.TA = ta
		updated |= FieldTA
	}
	d.ValidFields |= FieldTA

	ms := grp.DataBLsb&0x08 != 0
	if d.MS != ms {
		d.MS = ms
		updated |= FieldMS
	}
	d.ValidFields |= FieldMS

	segment := int(grp.DataBLsb & 0x03)

	d.ps.observe(segment*2, grp.DataDMsb)
	psComplete := d.ps.observe(segment*2+1, grp.DataDLsb)
	if psComplete {
		if d.PS != d.ps.chars {
			d.PS = d.ps.chars
			updated |= FieldPS
		}
		d.ValidFields |= FieldPS
	}

	bit2 := grp.DataBLsb&0x04 != 0
	if segment == 0 || segment == d.nextDISeg {
		switch segment {
		case 0:
			d.newDI = setBit(d.newDI, DIStereo, bit2)
			d.nextDISeg = 1
		case 1:
			d.newDI = setBit(d.newDI, DIArtificialHead, bit2)
			d.nextDISeg = 2
		case 2:
			d.newDI = setBit(d.newDI, DICompressed, bit2)
			d.nextDISeg = 3
		case 3:
			d.newDI = setBit(d.newDI, DIStaticPTY, bit2)
			if d.DI != d.newDI {
				d.DI = d.newDI
				updated |= FieldDI
			}
			d.nextDISeg = 0
			d.ValidFields |= FieldDI
		}
	} else {
		d.nextDISeg = 0
		d.newDI = 0
	}

	if grp.Version == 'A' {
		if d.addAF(grp.DataCMsb, grp.DataCLsb) {
			updated |= FieldAF
		}
	}

	return updated
}

func setBit(input uint8, bitmask uint8, value bool) uint8 {
	if value {
		return input | bitmask
	}
	return input &^ bitmask
}

// addAF extracts alternative-frequency data from block C of a version-A
// group 0 group per IEC 62106 §6.2.1.6 and reports whether the published
// set changed.
func (d *Decoder) addAF(cMsb, cLsb byte) bool {
	changed := false

	if cMsb == 250 {
		if d.AF.add(lfMFFrequency(cLsb)) {
			changed = true
		}
		cLsb = 0 // invalidate: not to be reinterpreted as a VHF AF below
	}

	if cMsb >= 224 && cMsb <= 249 {
		d.AF.Announced = int(cMsb) - 224
	}

	if cMsb >= 1 && cMsb < 205 {
		if d.AF.add(vhfFrequency(cMsb)) {
			changed = true
		}
	}
	if cLsb >= 1 && cLsb < 205 {
		if d.AF.add(vhfFrequency(cLsb)) {
			changed = true
		}
	}

	if d.AF.complete() {
		d.ValidFields |= FieldAF
	}
	return changed
}

func vhfFrequency(code byte) uint32 {
	return 87500000 + uint32(code)*100000
}

func lfMFFrequency(code byte) uint32 {
	if code <= 15 {
		return 152000 + uint32(code)*9000
	}
	return 531000 + uint32(code)*9000
}
