package domain

// Unit is an organisational unit (unit kerja). Branch units carry the parent they report to.
type Unit struct {
	UnitID   string  `json:"unitID"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentID,omitempty"`
}

// IsBranch reports whether the unit hangs below another unit.
func (u Unit) IsBranch() bool {
	return u.ParentID != nil && *u.ParentID != ""
}

// ComposeUnitCode returns the full unit code used in letter numbers:
// "parentCode.childCode" for branches, the plain code otherwise.
func ComposeUnitCode(unit Unit, parent *Unit) string {
	if unit.IsBranch() && parent != nil && parent.Code != "" {
		return parent.Code + "." + unit.Code
	}
	return unit.Code
}
