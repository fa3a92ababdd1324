package profile

// Profile classifies env variables and compose services for question synthesis.
type Profile struct {
	Version int `yaml:"version"`
	// Required names are always active and never offered as disabled.
	Required []string `yaml:"required"`
	// Optional names default to disabled.
	Optional []string          `yaml:"optional"`
	Labels   map[string]string `yaml:"labels"`
	// ForceDefault fixes the checkbox default of a service.
	ForceDefault map[string]bool `yaml:"force_default"`
	// ForceDefaultLargest variables default to their highest version.
	ForceDefaultLargest []string             `yaml:"force_default_largest"`
	When                map[string]Condition `yaml:"when"`
}

// Condition gates a question on earlier answers. A question is shown when all
// If names are truthy and all Unless names are falsy.
type Condition struct {
	If     []string `yaml:"if"`
	Unless []string `yaml:"unless"`
}
