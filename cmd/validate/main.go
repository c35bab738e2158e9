package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <preset.json> [preset.json ...]\n", os.Args[0])
		os.Exit(1)
	}

	validator := &PresetValidator{}
	failed := false

	for _, filename := range os.Args[1:] {
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("Preset files are valid!")
}

type PresetValidator struct {
	errors []string
}

func (v *PresetValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	// Validate filename format
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("preset file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidPresetFilename(nameWithoutExt) {
		return fmt.Errorf("preset filename '%s' must be lowercase snake_case (e.g., my_preset.json, not my-preset.json or MyPreset.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var raw options.Raw
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&raw); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	set, err := raw.Resolve()
	if err != nil {
		v.addError(err.Error())
	} else {
		v.validateGeneration(set)
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

// validateGeneration dry-runs a full generation so option combinations
// that only break at build time surface during validation.
func (v *PresetValidator) validateGeneration(set *options.Set) {
	const probeSeed = "validate"

	w, err := world.Generate(context.Background(), set, probeSeed)
	if err != nil {
		v.addError(fmt.Sprintf("generation failed: %v", err))
		return
	}

	report := w.CheckCompletable()
	if !report.Beatable {
		v.addError("generated world is not beatable with the full item pool")
	}
	for _, name := range report.Unreachable {
		v.addError(fmt.Sprintf("location '%s' is unreachable with the full item pool", name))
	}

	// Players need opening checks to pick up their first items.
	reach := w.Reachable(world.NewInventory(w.Precollected...))
	opening := 0
	for _, l := range w.Locations {
		if reach[l.Name] {
			opening++
		}
	}
	if opening == 0 {
		v.addError("no locations are in logic with only the starting inventory")
	}

	fmt.Printf("  %d locations, %d pool items, %d in logic at start, %d credits needed\n",
		len(w.Locations), len(w.Pool), opening, w.TotalMoneyNeeded)
	fmt.Printf("  goals: %s\n", strings.Join(w.GoalLevels(), ", "))
}

func (v *PresetValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidPresetFilename(name string) bool {
	return validFilenameRegex.MatchString(name)
}
