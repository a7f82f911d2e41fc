package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateToolchain(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if err := ensureSetMap(map[string]string{
		"paths.assets_dir":  c.Paths.AssetsDir,
		"paths.rtp_dir":     c.Paths.RTPDir,
		"paths.scratch_dir": c.Paths.ScratchDir,
		"paths.out_dir":     c.Paths.OutDir,
		"paths.log_dir":     c.Paths.LogDir,
	}); err != nil {
		return err
	}
	if c.Paths.ScratchDir == c.Paths.OutDir {
		return errors.New("paths.scratch_dir and paths.out_dir must differ (the scratch directory is cleared between builds)")
	}
	return nil
}

func (c *Config) validateToolchain() error {
	return ensureSetMap(map[string]string{
		"toolchain.bannertool":   c.Toolchain.Bannertool,
		"toolchain.3dstool":      c.Toolchain.ThreeDSTool,
		"toolchain.makerom":      c.Toolchain.Makerom,
		"toolchain.elf":          c.Toolchain.ELF,
		"toolchain.rsf_template": c.Toolchain.RSFTemplate,
	})
}

func ensureSetMap(values map[string]string) error {
	for key, value := range values {
		if value == "" {
			return fmt.Errorf("%s must be set", key)
		}
	}
	return nil
}
