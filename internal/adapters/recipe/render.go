package recipe

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/michellab/protopack/internal/core/domain"
)

// renderedRecipe is the fully resolved view printed by `protopack render`.
// Unlike the on-disk schema it carries the final build string with the
// BUILD_SUFFIX applied and the absolute source path.
type renderedRecipe struct {
	Package struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"package"`
	Source struct {
		Path   string   `yaml:"path"`
		Ignore []string `yaml:"ignore,omitempty"`
	} `yaml:"source"`
	Build struct {
		Number int        `yaml:"number"`
		String string     `yaml:"string"`
		Script [][]string `yaml:"script,omitempty"`
	} `yaml:"build"`
	Requirements struct {
		Build []string `yaml:"build,omitempty"`
		Run   []string `yaml:"run,omitempty"`
	} `yaml:"requirements"`
	Test struct {
		Requires []string `yaml:"requires,omitempty"`
	} `yaml:"test,omitempty"`
	About struct {
		Home        string `yaml:"home,omitempty"`
		License     string `yaml:"license,omitempty"`
		LicenseFile string `yaml:"license_file,omitempty"`
	} `yaml:"about,omitempty"`
}

// Render returns the resolved recipe as YAML, with buildSuffix applied to the
// build string.
func Render(r *domain.Recipe, buildSuffix string) (string, error) {
	var out renderedRecipe
	out.Package.Name = r.Package.Name.String()
	out.Package.Version = r.Package.Version.String()
	out.Source.Path = r.SourceDir()
	out.Source.Ignore = r.Source.Ignore
	out.Build.Number = r.Build.Number
	out.Build.String = r.BuildString(buildSuffix)
	out.Build.Script = r.Build.Script
	out.Requirements.Build = renderDeps(r.Requirements.Build)
	out.Requirements.Run = renderDeps(r.Requirements.Run)
	out.Test.Requires = renderDeps(r.Test.Requires)
	out.About.Home = r.About.Home.String()
	out.About.License = r.About.License.String()
	out.About.LicenseFile = r.About.LicenseFile.String()

	data, err := yaml.Marshal(&out)
	if err != nil {
		return "", zerr.Wrap(err, "failed to render recipe")
	}
	return string(data), nil
}

func renderDeps(deps []domain.Dependency) []string {
	if len(deps) == 0 {
		return nil
	}
	out := make([]string, len(deps))
	for i, d := range deps {
		out[i] = d.String()
	}
	return out
}
