package survey

import (
	"fulfillment/internal/pkg/errs"
)

// CostType classifies an additional equipment line item identified during a survey.
type CostType int

const (
	// CostTypeUnknown represents an invalid or undefined cost type.
	CostTypeUnknown CostType = iota

	// CostTypeEquipment is general customer-premises equipment.
	CostTypeEquipment

	// CostTypeCable covers cabling runs beyond the standard installation allowance.
	CostTypeCable

	// CostTypeExtender covers signal extenders and repeaters.
	CostTypeExtender

	// CostTypeRouter covers additional or upgraded routers.
	CostTypeRouter

	// CostTypeMounting covers brackets, poles and other mounting hardware.
	CostTypeMounting

	// CostTypeLabor covers additional technician labor.
	CostTypeLabor

	// CostTypePower covers power supplies and electrical work.
	CostTypePower

	// CostTypeAccess covers access equipment such as lifts or ladders.
	CostTypeAccess

	// CostTypeSafety covers safety equipment required by the site.
	CostTypeSafety

	// CostTypeOther covers anything not fitting the categories above.
	CostTypeOther
)

func getCostTypeStrings() map[CostType]string {
	return map[CostType]string{
		CostTypeUnknown:   "Unknown",
		CostTypeEquipment: "Equipment",
		CostTypeCable:     "Cable",
		CostTypeExtender:  "Extender",
		CostTypeRouter:    "Router",
		CostTypeMounting:  "Mounting",
		CostTypeLabor:     "Labor",
		CostTypePower:     "Power",
		CostTypeAccess:    "Access",
		CostTypeSafety:    "Safety",
		CostTypeOther:     "Other",
	}
}

// Validate checks if the CostType value is valid.
func (t CostType) Validate() error {
	if _, ok := getCostTypeStrings()[t]; !ok || t == CostTypeUnknown {
		return errs.NewValueIsInvalidError("cost type")
	}
	return nil
}

// String returns the human-readable name of the cost type.
func (t CostType) String() string {
	if str, ok := getCostTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// CostTypeFromString parses a cost type from its string representation.
// Used when reconstructing cost items from persistence or transport payloads.
func CostTypeFromString(s string) (CostType, error) {
	for t, str := range getCostTypeStrings() {
		if str == s && t != CostTypeUnknown {
			return t, nil
		}
	}
	return CostTypeUnknown, errs.NewValueIsInvalidError("cost type")
}
