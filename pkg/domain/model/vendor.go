package model

import "github.com/secmon-lab/hl7risk/pkg/domain/types"

// VendorResourceType is the kind of material a vendor resource points to
type VendorResourceType string

const (
	VendorResourceDocumentation VendorResourceType = "documentation"
	VendorResourceVideo         VendorResourceType = "video"
	VendorResourceTool          VendorResourceType = "tool"
	VendorResourceSample        VendorResourceType = "sample"
)

// VendorResource is a link published by a vendor
type VendorResource struct {
	Type        VendorResourceType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	URL         string             `json:"url"`
	External    bool               `json:"external"`
}

// VendorSupport describes the migration help a vendor offers
type VendorSupport struct {
	Level       types.SupportLevel `json:"level"`
	Description string             `json:"description"`
	Tools       []string           `json:"tools"`
}

// VendorContact holds vendor contact links. Any of them may be empty.
type VendorContact struct {
	Support       string `json:"support"`
	Documentation string `json:"documentation"`
	Community     string `json:"community"`
}

// VendorGuide is the migration guidance entry for one vendor
type VendorGuide struct {
	ID          string               `json:"id"`
	Vendor      string               `json:"vendor"`
	Category    types.VendorCategory `json:"category"`
	Description string               `json:"description"`
	Resources   []VendorResource     `json:"resources"`
	Support     VendorSupport        `json:"support"`
	Contact     VendorContact        `json:"contact"`
}
