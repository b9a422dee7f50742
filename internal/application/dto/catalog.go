package dto

// FrameworkCatalog is the parsed form of a framework catalog file: one
// framework definition plus its control definitions.
type FrameworkCatalog struct {
	Framework CatalogFramework `yaml:"framework" json:"framework"`
	Controls  []CatalogControl `yaml:"controls" json:"controls"`
}

// CatalogFramework describes the framework being imported.
type CatalogFramework struct {
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// CatalogControl describes one control in the catalog.
type CatalogControl struct {
	Code        string   `yaml:"code" json:"code"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Owner       string   `yaml:"owner,omitempty" json:"owner,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Status      string   `yaml:"status,omitempty" json:"status,omitempty"`
}
