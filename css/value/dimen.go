package value

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

// points per unit, with 72.27 points to the inch
var ptPerUnit = map[Unit]float64{
	UnitPT: 1,
	UnitPC: 12,
	UnitIN: 72.27,
	UnitCM: 72.27 / 2.54,
	UnitMM: 72.27 / 25.4,
	UnitPX: 72.27 / 96,
}

// Dimen converts an absolute length to design units. A unit-less zero
// converts to 0. Relative lengths cannot be converted without a reference
// and result in ErrWrongKind.
func (v Value) Dimen() (dimen.DU, error) {
	if v.kind == KindNumber && v.num == 0 {
		return 0, nil
	}
	if v.kind != KindLength || !v.unit.IsAbsolute() {
		return 0, v.wrongKind("absolute length")
	}
	f, ok := ptPerUnit[v.unit]
	if !ok {
		return 0, fmt.Errorf("%w: no conversion for unit %s", ErrWrongKind, v.unit)
	}
	return dimen.DU(v.num * f * float64(dimen.PT)), nil
}
