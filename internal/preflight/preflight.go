package preflight

import (
	"fmt"
	"strings"

	"ciapress/internal/config"
	"ciapress/internal/services"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config: the working
// directories, the fixed build inputs, and the toolchain binaries.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Scratch directory", cfg.Paths.ScratchDir),
		CheckDirectoryAccess("Output directory", cfg.Paths.OutDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
		CheckFileExists("EasyRPG ELF", cfg.Toolchain.ELF),
		CheckFileExists("RSF template", cfg.Toolchain.RSFTemplate),
	}

	for _, status := range CheckSystemDeps(cfg) {
		detail := status.Detail
		if status.Available {
			detail = status.Command
		}
		results = append(results, Result{Name: status.Name, Passed: status.Available, Detail: detail})
	}
	return results
}

// Verify confirms every hard build prerequisite: the three toolchain
// binaries, the EasyRPG ELF, and the RSF template. Problems are aggregated
// so one failed invocation surfaces everything that needs fixing.
func Verify(cfg *config.Config) error {
	if cfg == nil {
		return services.Wrap(services.ErrConfiguration, "preflight", "", "no configuration loaded", nil)
	}

	var problems []string

	var missing []string
	for _, status := range CheckSystemDeps(cfg) {
		if !status.Available {
			missing = append(missing, status.Name)
		}
	}
	if len(missing) > 0 {
		plural := ""
		if len(missing) > 1 {
			plural = "s"
		}
		problems = append(problems, fmt.Sprintf("missing prerequisite%s: %s", plural, strings.Join(missing, ", ")))
	}

	if res := CheckFileExists("EasyRPG ELF", cfg.Toolchain.ELF); !res.Passed {
		problems = append(problems, fmt.Sprintf("could not find EasyRPG ELF file: %s", cfg.Toolchain.ELF))
	}
	if res := CheckFileExists("RSF template", cfg.Toolchain.RSFTemplate); !res.Passed {
		problems = append(problems, fmt.Sprintf("could not find ROM spec file: %s", cfg.Toolchain.RSFTemplate))
	}

	if len(problems) == 0 {
		return nil
	}
	return services.Wrap(services.ErrConfiguration, "preflight", "", strings.Join(problems, "; "), nil)
}
