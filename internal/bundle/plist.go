package bundle

import (
	"fmt"
	"os"

	"howett.net/plist"
)

// InfoPlist returns the Info.plist dictionary for a recipe. Extra keys from
// the recipe's info table cannot override the generated ones.
func InfoPlist(recipe Recipe) map[string]interface{} {
	info := map[string]interface{}{}
	for key, value := range recipe.Info {
		info[key] = value
	}
	info["CFBundleName"] = recipe.Name
	info["CFBundleIdentifier"] = recipe.Identifier
	info["CFBundleVersion"] = recipe.Version
	info["CFBundleShortVersionString"] = recipe.Version
	info["CFBundleExecutable"] = recipe.Executable
	info["CFBundlePackageType"] = "APPL"
	info["CFBundleInfoDictionaryVersion"] = "6.0"
	return info
}

func writeInfoPlist(path string, info map[string]interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	encoder := plist.NewEncoder(file)
	encoder.Indent("\t")
	if err = encoder.Encode(info); err != nil {
		file.Close()
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	return file.Close()
}

func readInfoPlist(path string) (info map[string]interface{}, err error) {
	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	if _, err = plist.Unmarshal(data, &info); err != nil {
		err = fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return
}
