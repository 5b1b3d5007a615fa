package rds

// groupsEqual reports whether a and b carry identical payload bits, used to
// implement the "same group received twice" validation rule TMC relies on
// (spec.md §4.8, §4.9).
func groupsEqual(a, b Group) bool {
	return a.PI == b.PI &&
		a.Version == b.Version &&
		a.GroupID == b.GroupID &&
		a.DataBLsb == b.DataBLsb &&
		a.DataCMsb == b.DataCMsb && a.DataCLsb == b.DataCLsb &&
		a.DataDMsb == b.DataDMsb && a.DataDLsb == b.DataDLsb
}
