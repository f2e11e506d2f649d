package config

import (
	"errors"

	"github.com/LambdaTest/coverage-bridge/pkg/lumber"
	"github.com/LambdaTest/coverage-bridge/pkg/utils"
)

// ValidateCfg checks the validity of the jenkins config
func ValidateCfg(cfg *Config, logger lumber.Logger) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	validate, err := utils.GetValidator()
	if err != nil {
		return err
	}
	if err := utils.ValidateStruct(validate, &cfg.Jenkins, "jenkins configuration"); err != nil {
		return err
	}
	if cfg.Jenkins.User == "" || cfg.Jenkins.Token == "" {
		logger.Warnf("jenkins credentials not configured, requests will be anonymous")
	}
	return nil
}
