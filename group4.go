package rds

// decodeGroup4 decodes the Modified Julian Day, UTC time and local offset
// carried in a version-A group 4 group. The MJD must be received twice in
// a row before any time fields are decoded (spec.md §4.7).
func (d *Decoder) decodeGroup4(grp Group) FieldMask {
	if grp.Version != 'A' {
		return 0
	}

	mjd := uint32(grp.DataBLsb&0x03)<<15 | uint32(grp.DataCMsb)<<7 | uint32(grp.DataCLsb>>1)
	if _, ok := d.pendingMJD.Observe(mjd); !ok {
		return 0
	}

	d.utcHour = (grp.DataCLsb&0x01)<<4 | grp.DataDMsb>>4
	d.utcMinute = (grp.DataDMsb&0x0f)<<2 | grp.DataDLsb>>6
	d.utcOffset = grp.DataDLsb & 0x3f

	d.Time = decodeMJD(mjd, d.utcHour, d.utcMinute, d.utcOffset)
	d.ValidFields |= FieldTime
	return FieldTime
}
