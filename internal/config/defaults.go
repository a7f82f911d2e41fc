package config

const (
	defaultAssetsDir  = "~/.local/share/ciapress/assets"
	defaultScratchDir = "~/.local/share/ciapress/scratch"
	defaultOutDir     = "./out"
	defaultLogDir     = "~/.local/share/ciapress/logs"

	defaultBannertoolBinary  = "bannertool"
	defaultThreeDSToolBinary = "3dstool"
	defaultMakeromBinary     = "makerom"

	// Derived from assets_dir when left empty.
	defaultELFName         = "easyrpg-player.elf"
	defaultRSFTemplateName = "spec.rsf"
	defaultRTPDirName      = "rtp"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AssetsDir:  defaultAssetsDir,
			ScratchDir: defaultScratchDir,
			OutDir:     defaultOutDir,
			LogDir:     defaultLogDir,
		},
		Toolchain: Toolchain{
			Bannertool:  defaultBannertoolBinary,
			ThreeDSTool: defaultThreeDSToolBinary,
			Makerom:     defaultMakeromBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
