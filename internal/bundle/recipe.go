package bundle

import (
	"errors"
	"fmt"
	"strings"

	"arkhive.dev/applauncher/internal/launcher"
	"github.com/BurntSushi/toml"
)

// Recipe describes how to assemble an application bundle.
type Recipe struct {
	Name       string                 `toml:"name"`
	Identifier string                 `toml:"identifier"`
	Version    string                 `toml:"version"`
	Executable string                 `toml:"executable"`
	Launcher   string                 `toml:"launcher"`
	Main       string                 `toml:"main"`
	Policy     string                 `toml:"policy"`
	Info       map[string]interface{} `toml:"info"`
}

// LoadRecipe decodes a TOML recipe file and fills in defaults.
func LoadRecipe(path string) (recipe Recipe, err error) {
	var metadata toml.MetaData
	if metadata, err = toml.DecodeFile(path, &recipe); err != nil {
		return recipe, fmt.Errorf("cannot decode recipe %s: %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		return recipe, fmt.Errorf("unknown recipe keys in %s: %v", path, undecoded)
	}
	err = recipe.Normalize()
	return
}

// Normalize validates required fields and applies defaults.
func (recipe *Recipe) Normalize() error {
	var missing []string
	if recipe.Name == "" {
		missing = append(missing, "name")
	}
	if recipe.Launcher == "" {
		missing = append(missing, "launcher")
	}
	if recipe.Main == "" {
		missing = append(missing, "main")
	}
	if len(missing) > 0 {
		return fmt.Errorf("recipe is missing %s", strings.Join(missing, ", "))
	}
	if strings.ContainsRune(recipe.Name, '/') {
		return errors.New("recipe name cannot contain '/'")
	}
	if recipe.Executable == "" {
		recipe.Executable = recipe.Name
	}
	if strings.ContainsRune(recipe.Executable, '/') {
		return errors.New("recipe executable cannot contain '/'")
	}
	if recipe.Identifier == "" {
		recipe.Identifier = "com.example." + strings.ToLower(strings.ReplaceAll(recipe.Name, " ", "-"))
	}
	if recipe.Version == "" {
		recipe.Version = "1.0"
	}
	if recipe.Policy == "" {
		recipe.Policy = launcher.ForwardOriginal.String()
	}
	if _, err := launcher.ParseArgPolicy(recipe.Policy); err != nil {
		return err
	}
	return nil
}
