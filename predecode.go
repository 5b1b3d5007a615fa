package rds

// decodeBlockA extracts the 16-bit program identification code and applies
// the twice-in-a-row validation rule before publishing it (spec.md §4.2).
func (d *Decoder) decodeBlockA(grp *Group, raw RawBlock) FieldMask {
	pi := uint16(raw.Msb)<<8 | uint16(raw.Lsb)
	grp.PI = pi

	if v, ok := d.pendingPI.Observe(pi); ok {
		var updated FieldMask
		if d.PI != v {
			updated |= FieldPI
		}
		d.PI = v
		d.ValidFields |= FieldPI
		return updated
	}
	return 0
}

// decodeBlockB extracts group id, version, traffic-program flag and
// program type, and stashes the 5 low bits used by the group-type
// dispatcher (spec.md §4.2).
func (d *Decoder) decodeBlockB(grp *Group, raw RawBlock) FieldMask {
	var updated FieldMask

	grp.GroupID = raw.Msb >> 4
	if raw.Msb&0x08 != 0 {
		grp.Version = 'B'
	} else {
		grp.Version = 'A'
	}

	trafficProgram := raw.Msb&0x04 != 0
	if d.TP != trafficProgram {
		d.TP = trafficProgram
		updated |= FieldTP
	}
	d.ValidFields |= FieldTP

	grp.DataBLsb = raw.Lsb & 0x1f

	pty := (uint8(raw.Msb)<<3 | raw.Lsb>>5) & 0x1f
	if v, ok := d.pendingPTY.Observe(pty); ok {
		if d.PTY != v {
			updated |= FieldPTY
		}
		d.PTY = v
		d.ValidFields |= FieldPTY
	}

	return updated
}
