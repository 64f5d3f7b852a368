package recipe

// recipeFile mirrors the on-disk structure of recipe.yaml.
type recipeFile struct {
	Package      packageDTO      `yaml:"package"`
	Source       sourceDTO       `yaml:"source"`
	Build        buildDTO        `yaml:"build"`
	Requirements requirementsDTO `yaml:"requirements"`
	Test         testDTO         `yaml:"test"`
	About        aboutDTO        `yaml:"about"`
}

type packageDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type sourceDTO struct {
	Path   string   `yaml:"path"`
	Ignore []string `yaml:"ignore"`
}

type buildDTO struct {
	Number int        `yaml:"number"`
	String string     `yaml:"string"`
	Script [][]string `yaml:"script"`
}

type requirementsDTO struct {
	Build []string `yaml:"build"`
	Run   []string `yaml:"run"`
}

type testDTO struct {
	Requires []string `yaml:"requires"`
}

type aboutDTO struct {
	Home        string `yaml:"home"`
	License     string `yaml:"license"`
	LicenseFile string `yaml:"license_file"`
}
