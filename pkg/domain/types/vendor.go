package types

import "github.com/m-mizutani/goerr/v2"

// VendorCategory classifies a vendor guide
type VendorCategory string

const (
	VendorCategoryEHR               VendorCategory = "EHR"
	VendorCategoryIntegrationEngine VendorCategory = "Integration Engine"
	VendorCategoryMiddleware        VendorCategory = "Middleware"
	VendorCategoryCloudPlatform     VendorCategory = "Cloud Platform"
)

// IsValid checks if the vendor category is valid
func (c VendorCategory) IsValid() bool {
	switch c {
	case VendorCategoryEHR,
		VendorCategoryIntegrationEngine,
		VendorCategoryMiddleware,
		VendorCategoryCloudPlatform:
		return true
	default:
		return false
	}
}

// String returns the string representation of the vendor category
func (c VendorCategory) String() string {
	return string(c)
}

// ParseVendorCategory parses a string into a VendorCategory
func ParseVendorCategory(s string) (VendorCategory, error) {
	c := VendorCategory(s)
	if !c.IsValid() {
		return "", goerr.Wrap(ErrInvalidInput, "invalid vendor category", goerr.V("category", s))
	}
	return c, nil
}

// SupportLevel is how much migration help a vendor provides
type SupportLevel string

const (
	SupportLevelFull    SupportLevel = "Full"
	SupportLevelPartial SupportLevel = "Partial"
	SupportLevelLimited SupportLevel = "Limited"
	SupportLevelNone    SupportLevel = "None"
)

// IsValid checks if the support level is valid
func (l SupportLevel) IsValid() bool {
	switch l {
	case SupportLevelFull,
		SupportLevelPartial,
		SupportLevelLimited,
		SupportLevelNone:
		return true
	default:
		return false
	}
}

// String returns the string representation of the support level
func (l SupportLevel) String() string {
	return string(l)
}

// ParseSupportLevel parses a string into a SupportLevel
func ParseSupportLevel(s string) (SupportLevel, error) {
	l := SupportLevel(s)
	if !l.IsValid() {
		return "", goerr.Wrap(ErrInvalidInput, "invalid support level", goerr.V("support", s))
	}
	return l, nil
}
