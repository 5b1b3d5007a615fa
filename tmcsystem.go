package rds

// decodeTMCSystem decodes the TMC system information carried in a type-3A
// group that announces TMC (spec.md §4.9). The same group must be received
// twice in a row before it is accepted; the comparison group is then
// invalidated so a third identical reception doesn't redecode it again.
func (d *Decoder) decodeTMCSystem(grp Group) FieldMask {
	if !(d.havePrevTMCSys && groupsEqual(d.prevTMCSysGroup, grp)) {
		d.prevTMCSysGroup = grp
		d.havePrevTMCSys = true
		return 0
	}
	d.havePrevTMCSys = false

	variant := grp.DataCMsb >> 6
	switch variant {
	case 0:
		d.TMC.LTN = ((grp.DataCMsb & 0x0f) << 2) | (grp.DataCLsb >> 6)
		d.TMC.AFI = grp.DataCLsb&0x20 != 0
		d.TMC.EnhancedMode = grp.DataCLsb&0x10 != 0
		d.TMC.MGS = grp.DataCLsb & 0x0f
	case 1:
		d.TMC.Gap = (grp.DataCMsb & 0x30) >> 4
		d.TMC.SID = ((grp.DataCMsb & 0x0f) << 2) | (grp.DataCLsb >> 6)
		if d.TMC.EnhancedMode {
			d.TMC.TA = (grp.DataCLsb & 0x30) >> 4
			d.TMC.TW = (grp.DataCLsb & 0x0c) >> 2
			d.TMC.TD = grp.DataCLsb & 0x03
		}
	}

	d.ValidFields |= FieldTMCSystem
	return FieldTMCSystem
}
