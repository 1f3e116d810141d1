package config

import (
	"bytes"
	_ "embed"
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

//go:embed default_catalog.toml
var defaultCatalog []byte

// CatalogConfig represents the TOML catalog: the risk questionnaire, the
// migration risk register, the vendor guides, the implementation phases and
// the reference content index
type CatalogConfig struct {
	Factors  []Factor        `toml:"factor"`
	Register []RegisterEntry `toml:"register"`
	Vendors  []Vendor        `toml:"vendor"`
	Phases   []Phase         `toml:"phase"`
	Content  []ContentItem   `toml:"content"`
}

// Factor represents a risk factor configuration
type Factor struct {
	ID       string         `toml:"id"`
	Category string         `toml:"category"`
	Question string         `toml:"question"`
	Weight   int            `toml:"weight"`
	Options  []FactorOption `toml:"option"`
}

// FactorOption represents one answer of a factor
type FactorOption struct {
	Value       int    `toml:"value"`
	Label       string `toml:"label"`
	Description string `toml:"description"`
}

// Validate checks if the Factor is valid
func (f *Factor) Validate() error {
	id := types.FactorID(f.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidFactorID, err.Error(), goerr.V(FactorIDKey, f.ID))
	}
	if f.Question == "" {
		return goerr.Wrap(ErrMissingName, "factor question is required", goerr.V(FactorIDKey, f.ID))
	}
	if f.Weight < 1 {
		return goerr.Wrap(ErrInvalidWeight, "invalid weight", goerr.V(FactorIDKey, f.ID), goerr.V(ValueKey, f.Weight))
	}

	want := int(types.MaxOptionValue - types.MinOptionValue + 1)
	if len(f.Options) != want {
		return goerr.Wrap(ErrInvalidOptions, "wrong number of options",
			goerr.V(FactorIDKey, f.ID),
			goerr.V("count", len(f.Options)))
	}

	seen := make(map[int]bool)
	for _, opt := range f.Options {
		if err := types.OptionValue(opt.Value).Validate(); err != nil || seen[opt.Value] {
			return goerr.Wrap(ErrInvalidOptions, "option value out of range or repeated",
				goerr.V(FactorIDKey, f.ID),
				goerr.V(ValueKey, opt.Value))
		}
		if opt.Label == "" {
			return goerr.Wrap(ErrMissingName, "option label is required",
				goerr.V(FactorIDKey, f.ID),
				goerr.V(ValueKey, opt.Value))
		}
		seen[opt.Value] = true
	}
	return nil
}

// RegisterEntry represents a risk register item configuration
type RegisterEntry struct {
	ID              string `toml:"id"`
	Category        string `toml:"category"`
	Description     string `toml:"description"`
	Impact          string `toml:"impact"`
	Likelihood      string `toml:"likelihood"`
	ImpactScore     int    `toml:"impact_score"`
	LikelihoodScore int    `toml:"likelihood_score"`
	Mitigation      string `toml:"mitigation"`
	Owner           string `toml:"owner"`
	Status          string `toml:"status"`
}

// Validate checks if the RegisterEntry is valid
func (r *RegisterEntry) Validate() error {
	if r.ID == "" {
		return goerr.Wrap(ErrInvalidRegister, "register ID is required")
	}
	if r.Description == "" {
		return goerr.Wrap(ErrMissingName, "register description is required", goerr.V(RegisterIDKey, r.ID))
	}
	if _, err := types.ParseLevel(r.Impact); err != nil {
		return goerr.Wrap(ErrInvalidRegister, "invalid impact", goerr.V(RegisterIDKey, r.ID), goerr.V(ValueKey, r.Impact))
	}
	if _, err := types.ParseLevel(r.Likelihood); err != nil {
		return goerr.Wrap(ErrInvalidRegister, "invalid likelihood", goerr.V(RegisterIDKey, r.ID), goerr.V(ValueKey, r.Likelihood))
	}
	if r.ImpactScore < 1 || r.ImpactScore > 5 {
		return goerr.Wrap(ErrInvalidRegister, "impact score must be between 1 and 5", goerr.V(RegisterIDKey, r.ID), goerr.V(ValueKey, r.ImpactScore))
	}
	if r.LikelihoodScore < 1 || r.LikelihoodScore > 5 {
		return goerr.Wrap(ErrInvalidRegister, "likelihood score must be between 1 and 5", goerr.V(RegisterIDKey, r.ID), goerr.V(ValueKey, r.LikelihoodScore))
	}
	if _, err := types.ParseRegisterStatus(r.Status); err != nil {
		return goerr.Wrap(ErrInvalidRegister, "invalid status", goerr.V(RegisterIDKey, r.ID), goerr.V(ValueKey, r.Status))
	}
	return nil
}

// Vendor represents a vendor guide configuration
type Vendor struct {
	ID                 string           `toml:"id"`
	Name               string           `toml:"name"`
	Category           string           `toml:"category"`
	Description        string           `toml:"description"`
	SupportLevel       string           `toml:"support_level"`
	SupportDescription string           `toml:"support_description"`
	Tools              []string         `toml:"tools"`
	Resources          []VendorResource `toml:"resource"`
	Contact            VendorContact    `toml:"contact"`
}

// VendorResource represents a vendor link
type VendorResource struct {
	Type        string `toml:"type"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	URL         string `toml:"url"`
	External    bool   `toml:"external"`
}

// VendorContact represents vendor contact links
type VendorContact struct {
	Support       string `toml:"support"`
	Documentation string `toml:"documentation"`
	Community     string `toml:"community"`
}

// Validate checks if the Vendor is valid
func (v *Vendor) Validate() error {
	if v.ID == "" {
		return goerr.Wrap(ErrInvalidVendor, "vendor ID is required")
	}
	if v.Name == "" {
		return goerr.Wrap(ErrMissingName, "vendor name is required", goerr.V(VendorIDKey, v.ID))
	}
	if _, err := types.ParseVendorCategory(v.Category); err != nil {
		return goerr.Wrap(ErrInvalidVendor, "invalid category", goerr.V(VendorIDKey, v.ID), goerr.V(ValueKey, v.Category))
	}
	if _, err := types.ParseSupportLevel(v.SupportLevel); err != nil {
		return goerr.Wrap(ErrInvalidVendor, "invalid support level", goerr.V(VendorIDKey, v.ID), goerr.V(ValueKey, v.SupportLevel))
	}
	for _, res := range v.Resources {
		switch model.VendorResourceType(res.Type) {
		case model.VendorResourceDocumentation, model.VendorResourceVideo, model.VendorResourceTool, model.VendorResourceSample:
		default:
			return goerr.Wrap(ErrInvalidVendor, "invalid resource type", goerr.V(VendorIDKey, v.ID), goerr.V(ValueKey, res.Type))
		}
		if res.Title == "" || res.URL == "" {
			return goerr.Wrap(ErrInvalidVendor, "resource title and url are required", goerr.V(VendorIDKey, v.ID))
		}
	}
	return nil
}

// Phase represents an implementation phase configuration
type Phase struct {
	ID           string   `toml:"id"`
	Title        string   `toml:"title"`
	Description  string   `toml:"description"`
	Duration     string   `toml:"duration"`
	Tasks        []string `toml:"tasks"`
	Dependencies []string `toml:"dependencies"`
}

func (p *Phase) toDomain() model.Phase {
	return model.Phase{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Duration:     p.Duration,
		Tasks:        p.Tasks,
		Dependencies: p.Dependencies,
	}
}

// Validate checks if the Phase is valid on its own. Dependencies are checked
// against the other phases by CatalogConfig.Validate.
func (p *Phase) Validate() error {
	if p.ID == "" {
		return goerr.Wrap(ErrInvalidPhase, "phase ID is required")
	}
	if p.Title == "" {
		return goerr.Wrap(ErrMissingName, "phase title is required", goerr.V(PhaseIDKey, p.ID))
	}
	phase := p.toDomain()
	if _, _, err := phase.Weeks(); err != nil {
		return goerr.Wrap(ErrInvalidPhase, err.Error(), goerr.V(PhaseIDKey, p.ID), goerr.V(ValueKey, p.Duration))
	}
	for _, dep := range p.Dependencies {
		if dep == p.ID {
			return goerr.Wrap(ErrPhaseCycle, "phase depends on itself", goerr.V(PhaseIDKey, p.ID))
		}
	}
	return nil
}

// ContentItem represents an entry of the searchable reference index
type ContentItem struct {
	Title       string   `toml:"title"`
	Category    string   `toml:"category"`
	URL         string   `toml:"url"`
	Description string   `toml:"description"`
	Keywords    []string `toml:"keywords"`
}

// Validate checks if the ContentItem is valid
func (c *ContentItem) Validate() error {
	if c.Title == "" {
		return goerr.Wrap(ErrMissingName, "content title is required", goerr.V("url", c.URL))
	}
	if c.URL == "" || c.Category == "" {
		return goerr.Wrap(ErrInvalidContent, "content url and category are required", goerr.V("title", c.Title))
	}
	return nil
}

// validatePhaseGraph checks that every dependency names a defined phase and
// that no dependency chain loops back
func validatePhaseGraph(phases []Phase) error {
	deps := make(map[string][]string, len(phases))
	for _, p := range phases {
		deps[p.ID] = p.Dependencies
	}
	for _, p := range phases {
		for _, dep := range p.Dependencies {
			if _, ok := deps[dep]; !ok {
				return goerr.Wrap(ErrInvalidPhase, "dependency on undefined phase",
					goerr.V(PhaseIDKey, p.ID),
					goerr.V("dependency", dep))
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(phases))
	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return goerr.Wrap(ErrPhaseCycle, "dependency cycle", goerr.V(PhaseIDKey, id))
		case done:
			return nil
		}
		state[id] = visiting
		for _, dep := range deps[id] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, p := range phases {
		if err := visit(p.ID); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the CatalogConfig is valid
func (c *CatalogConfig) Validate() error {
	if len(c.Factors) == 0 {
		return goerr.Wrap(ErrNoFactors, "catalog has no factor")
	}

	factorIDs := make(map[string]bool)
	for _, f := range c.Factors {
		if err := f.Validate(); err != nil {
			return goerr.Wrap(err, "invalid factor")
		}
		if factorIDs[f.ID] {
			return goerr.Wrap(ErrDuplicateFactorID, "factor defined twice", goerr.V(FactorIDKey, f.ID))
		}
		factorIDs[f.ID] = true
	}

	registerIDs := make(map[string]bool)
	for _, r := range c.Register {
		if err := r.Validate(); err != nil {
			return goerr.Wrap(err, "invalid register item")
		}
		if registerIDs[r.ID] {
			return goerr.Wrap(ErrDuplicateRegister, "register item defined twice", goerr.V(RegisterIDKey, r.ID))
		}
		registerIDs[r.ID] = true
	}

	vendorIDs := make(map[string]bool)
	for _, v := range c.Vendors {
		if err := v.Validate(); err != nil {
			return goerr.Wrap(err, "invalid vendor")
		}
		if vendorIDs[v.ID] {
			return goerr.Wrap(ErrDuplicateVendorID, "vendor defined twice", goerr.V(VendorIDKey, v.ID))
		}
		vendorIDs[v.ID] = true
	}

	phaseIDs := make(map[string]bool)
	for _, p := range c.Phases {
		if err := p.Validate(); err != nil {
			return goerr.Wrap(err, "invalid phase")
		}
		if phaseIDs[p.ID] {
			return goerr.Wrap(ErrDuplicatePhaseID, "phase defined twice", goerr.V(PhaseIDKey, p.ID))
		}
		phaseIDs[p.ID] = true
	}
	if err := validatePhaseGraph(c.Phases); err != nil {
		return goerr.Wrap(err, "invalid phase dependencies")
	}

	for _, item := range c.Content {
		if err := item.Validate(); err != nil {
			return goerr.Wrap(err, "invalid content item")
		}
	}

	return nil
}

// ParseCatalog decodes and validates a TOML catalog. Unknown keys are
// rejected so typos in a custom catalog are reported.
func ParseCatalog(data []byte) (*CatalogConfig, error) {
	var cfg CatalogConfig
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML catalog", goerr.V("cause", err.Error()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "catalog validation failed")
	}

	return &cfg, nil
}

// LoadCatalog loads the catalog from a TOML file
func LoadCatalog(path string) (*CatalogConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "catalog file does not exist", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V(ConfigPathKey, path))
	}

	cfg, err := ParseCatalog(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load catalog", goerr.V(ConfigPathKey, path))
	}
	return cfg, nil
}

// DefaultCatalog returns the built-in catalog
func DefaultCatalog() (*CatalogConfig, error) {
	cfg, err := ParseCatalog(defaultCatalog)
	if err != nil {
		return nil, goerr.Wrap(err, "built-in catalog is broken")
	}
	return cfg, nil
}

// ToDomain converts CatalogConfig to the domain catalog
func (c *CatalogConfig) ToDomain() *model.Catalog {
	factors := make([]model.RiskFactor, len(c.Factors))
	for i, f := range c.Factors {
		options := make([]model.Option, len(f.Options))
		for j, opt := range f.Options {
			options[j] = model.Option{
				Value:       types.OptionValue(opt.Value),
				Label:       opt.Label,
				Description: opt.Description,
			}
		}
		factors[i] = model.RiskFactor{
			ID:       types.FactorID(f.ID),
			Category: f.Category,
			Question: f.Question,
			Weight:   f.Weight,
			Options:  options,
		}
	}

	register := make([]model.RegisterItem, len(c.Register))
	for i, r := range c.Register {
		register[i] = model.RegisterItem{
			ID:              r.ID,
			Category:        r.Category,
			Description:     r.Description,
			Impact:          types.Level(r.Impact),
			Likelihood:      types.Level(r.Likelihood),
			ImpactScore:     r.ImpactScore,
			LikelihoodScore: r.LikelihoodScore,
			Mitigation:      r.Mitigation,
			Owner:           r.Owner,
			Status:          types.RegisterStatus(r.Status),
		}
	}

	vendors := make([]model.VendorGuide, len(c.Vendors))
	for i, v := range c.Vendors {
		resources := make([]model.VendorResource, len(v.Resources))
		for j, res := range v.Resources {
			resources[j] = model.VendorResource{
				Type:        model.VendorResourceType(res.Type),
				Title:       res.Title,
				Description: res.Description,
				URL:         res.URL,
				External:    res.External,
			}
		}
		vendors[i] = model.VendorGuide{
			ID:          v.ID,
			Vendor:      v.Name,
			Category:    types.VendorCategory(v.Category),
			Description: v.Description,
			Resources:   resources,
			Support: model.VendorSupport{
				Level:       types.SupportLevel(v.SupportLevel),
				Description: v.SupportDescription,
				Tools:       v.Tools,
			},
			Contact: model.VendorContact{
				Support:       v.Contact.Support,
				Documentation: v.Contact.Documentation,
				Community:     v.Contact.Community,
			},
		}
	}

	phases := make([]model.Phase, len(c.Phases))
	for i, p := range c.Phases {
		phases[i] = p.toDomain()
	}

	content := make([]model.ContentItem, len(c.Content))
	for i, item := range c.Content {
		content[i] = model.ContentItem{
			Title:       item.Title,
			Category:    item.Category,
			URL:         item.URL,
			Description: item.Description,
			Keywords:    item.Keywords,
		}
	}

	return &model.Catalog{
		Factors:  factors,
		Register: register,
		Vendors:  vendors,
		Phases:   phases,
		Content:  content,
	}
}

// Catalog holds CLI flags selecting the catalog file
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to a TOML catalog replacing the built-in questionnaire, register and vendor guides",
			Sources:     cli.EnvVars("HL7RISK_CATALOG"),
			Destination: &c.path,
		},
	}
}

// Configure loads the selected catalog, falling back to the built-in one
func (c *Catalog) Configure() (*model.Catalog, error) {
	if c.path == "" {
		cfg, err := DefaultCatalog()
		if err != nil {
			return nil, err
		}
		return cfg.ToDomain(), nil
	}

	cfg, err := LoadCatalog(c.path)
	if err != nil {
		return nil, err
	}
	return cfg.ToDomain(), nil
}

// Path returns the configured catalog path, empty for the built-in catalog
func (c *Catalog) Path() string {
	return c.path
}
