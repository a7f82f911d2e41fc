package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeToolchain(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.AssetsDir) == "" {
		c.Paths.AssetsDir = defaultAssetsDir
	}
	if c.Paths.AssetsDir, err = expandPath(c.Paths.AssetsDir); err != nil {
		return fmt.Errorf("paths.assets_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.RTPDir) == "" {
		c.Paths.RTPDir = filepath.Join(c.Paths.AssetsDir, defaultRTPDirName)
	}
	if c.Paths.RTPDir, err = expandPath(c.Paths.RTPDir); err != nil {
		return fmt.Errorf("paths.rtp_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ScratchDir) == "" {
		c.Paths.ScratchDir = defaultScratchDir
	}
	if c.Paths.ScratchDir, err = expandPath(c.Paths.ScratchDir); err != nil {
		return fmt.Errorf("paths.scratch_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutDir) == "" {
		c.Paths.OutDir = defaultOutDir
	}
	if c.Paths.OutDir, err = expandPath(c.Paths.OutDir); err != nil {
		return fmt.Errorf("paths.out_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeToolchain() error {
	var err error
	c.Toolchain.Bannertool = strings.TrimSpace(c.Toolchain.Bannertool)
	if c.Toolchain.Bannertool == "" {
		c.Toolchain.Bannertool = defaultBannertoolBinary
	}
	c.Toolchain.ThreeDSTool = strings.TrimSpace(c.Toolchain.ThreeDSTool)
	if c.Toolchain.ThreeDSTool == "" {
		c.Toolchain.ThreeDSTool = defaultThreeDSToolBinary
	}
	c.Toolchain.Makerom = strings.TrimSpace(c.Toolchain.Makerom)
	if c.Toolchain.Makerom == "" {
		c.Toolchain.Makerom = defaultMakeromBinary
	}
	c.Toolchain.ELF = strings.TrimSpace(c.Toolchain.ELF)
	if c.Toolchain.ELF == "" {
		c.Toolchain.ELF = filepath.Join(c.Paths.AssetsDir, defaultELFName)
	} else if c.Toolchain.ELF, err = expandPath(c.Toolchain.ELF); err != nil {
		return fmt.Errorf("toolchain.elf: %w", err)
	}
	c.Toolchain.RSFTemplate = strings.TrimSpace(c.Toolchain.RSFTemplate)
	if c.Toolchain.RSFTemplate == "" {
		c.Toolchain.RSFTemplate = filepath.Join(c.Paths.AssetsDir, defaultRSFTemplateName)
	} else if c.Toolchain.RSFTemplate, err = expandPath(c.Toolchain.RSFTemplate); err != nil {
		return fmt.Errorf("toolchain.rsf_template: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
