package config

import (
	"fmt"
	"os"

	"github.com/LambdaTest/coverage-bridge/pkg/core"
	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"github.com/LambdaTest/coverage-bridge/pkg/utils"
	"gopkg.in/yaml.v3"
)

// targetsFile is the layout of the watch targets yaml file
type targetsFile struct {
	Targets []*core.JobTarget `yaml:"targets" validate:"dive,required"`
}

// LoadTargets reads and validates the watch targets file at path.
// A target without depth is fetched with the default depth.
func LoadTargets(path string) ([]*core.JobTarget, error) {
	path, err := utils.ResolveYAMLFile(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTargets(content, path)
}

// ParseTargets decodes and validates the content of a targets file.
func ParseTargets(content []byte, source string) ([]*core.JobTarget, error) {
	var file targetsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("`%s` contains invalid format: %w", source, err)
	}
	validate, err := utils.GetValidator()
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(validate, &file, source); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(file.Targets))
	targets := make([]*core.JobTarget, 0, len(file.Targets))
	for _, target := range file.Targets {
		if target.Depth == 0 {
			target.Depth = global.DefaultDepth
		}
		if _, ok := seen[target.Key()]; ok {
			continue
		}
		seen[target.Key()] = struct{}{}
		targets = append(targets, target)
	}
	return targets, nil
}
