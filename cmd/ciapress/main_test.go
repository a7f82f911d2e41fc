package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ciapress/internal/config"
	"ciapress/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.AssetsDir = filepath.Join(base, "assets")
	cfgVal.Paths.RTPDir = filepath.Join(base, "assets", "rtp")
	cfgVal.Paths.ScratchDir = filepath.Join(base, "scratch")
	cfgVal.Paths.OutDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Toolchain.ELF = filepath.Join(base, "assets", "easyrpg-player.elf")
	cfgVal.Toolchain.RSFTemplate = filepath.Join(base, "assets", "spec.rsf")
	cfg := &cfgVal

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	testsupport.WriteDefaultAssets(t, cfg.DefaultAssetsDir())
	testsupport.WriteFileString(t, cfg.Toolchain.ELF, "\x7fELF fake player binary\n")
	testsupport.WriteFileString(t, cfg.Toolchain.RSFTemplate, "BasicInfo:\n  Title: EasyRPG\n  UniqueId: 0x{{UNIQUE_ID}}\n")
	makeStubExecutables(t, filepath.Join(base, "bin"), "bannertool", "3dstool", "makerom")

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nassets_dir = %q\nrtp_dir = %q\nscratch_dir = %q\nout_dir = %q\nlog_dir = %q\n\n[toolchain]\nelf = %q\nrsf_template = %q\n",
		cfg.Paths.AssetsDir,
		cfg.Paths.RTPDir,
		cfg.Paths.ScratchDir,
		cfg.Paths.OutDir,
		cfg.Paths.LogDir,
		cfg.Toolchain.ELF,
		cfg.Toolchain.RSFTemplate,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func makeStubExecutables(t *testing.T, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create stub bin dir: %v", err)
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIBuildSingleGame(t *testing.T) {
	env := setupCLITestEnv(t)
	game := filepath.Join(env.baseDir, "Midnight Train")
	testsupport.WriteGame(t, game,
		testsupport.WithTitle("Midnight Train"),
		testsupport.WithCIAID("AB12CD"),
		testsupport.WithFullPackage(),
	)

	stdout, _, err := runCLI(t, env.configPath, "build", game)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := "Built Midnight Train as " + filepath.Join("out", "Midnight-Train.cia") + ": #AB12CD Midnight Train (by Unknown author)"
	if !strings.Contains(stdout, want) {
		t.Fatalf("stdout missing %q:\n%s", want, stdout)
	}
	if strings.Contains(stdout, "in total") {
		t.Fatalf("single-game build printed batch summary:\n%s", stdout)
	}
}

func TestCLIBuildBatch(t *testing.T) {
	env := setupCLITestEnv(t)
	root := filepath.Join(env.baseDir, "games")
	testsupport.WriteGame(t, filepath.Join(root, "Good Game"),
		testsupport.WithTitle("Good Game"),
		testsupport.WithFullPackage(),
	)
	if err := os.MkdirAll(filepath.Join(root, "Not A Game"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	stdout, _, err := runCLI(t, env.configPath, "build", root)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(stdout, "not a game") {
		t.Fatalf("stdout missing non-game warning:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Built 1 CIA file in total.") {
		t.Fatalf("stdout missing batch summary:\n%s", stdout)
	}
}

func TestCLIBuildSingleGameFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	game := filepath.Join(env.baseDir, "Broken Game")
	testsupport.WriteGame(t, game,
		testsupport.WithAssetContent("gameinfo.cfg", testsupport.DefaultInfoContent),
	)

	stdout, _, err := runCLI(t, env.configPath, "build", game)
	if err == nil {
		t.Fatalf("expected error, got stdout:\n%s", stdout)
	}
	if !strings.Contains(err.Error(), "no archive was built") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "game uses default assets") {
		t.Fatalf("stdout missing default-asset warning:\n%s", stdout)
	}
}

func TestCLIBuildMissingPrerequisites(t *testing.T) {
	env := setupCLITestEnv(t)
	game := filepath.Join(env.baseDir, "game")
	testsupport.WriteGame(t, game, testsupport.WithFullPackage())
	t.Setenv("PATH", t.TempDir())

	_, _, err := runCLI(t, env.configPath, "build", game)
	if err == nil {
		t.Fatal("expected missing prerequisite error")
	}
	if !strings.Contains(err.Error(), "missing prerequisites: bannertool, 3dstool, makerom") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCLIBuildWarnsOnEmptyRTPCatalog(t *testing.T) {
	env := setupCLITestEnv(t)
	game := filepath.Join(env.baseDir, "game")
	testsupport.WriteGame(t, game, testsupport.WithFullPackage())

	stdout, _, err := runCLI(t, env.configPath, "build", game)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := "ciapress: Warning: could not find RTP directory: " + env.cfg.Paths.RTPDir
	if !strings.Contains(stdout, want) {
		t.Fatalf("stdout missing %q:\n%s", want, stdout)
	}
}

func TestCLIRTPCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFileString(t, filepath.Join(env.cfg.Paths.RTPDir, "2000-jp", "rtp-marker.txt"), "marker\n")
	testsupport.WriteFileString(t, filepath.Join(env.cfg.Paths.RTPDir, "junk", "stray.txt"), "stray\n")

	stdout, _, err := runCLI(t, env.configPath, "rtp")
	if err != nil {
		t.Fatalf("rtp: %v", err)
	}
	var availableLine string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.Contains(line, "2000-jp ") {
			availableLine = line
			break
		}
	}
	if !strings.Contains(availableLine, "yes") {
		t.Fatalf("expected 2000-jp to be available:\n%s", stdout)
	}
	if !strings.Contains(stdout, "2003-en-maker-universe") {
		t.Fatalf("stdout missing known release rows:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Unrecognized directories under "+env.cfg.Paths.RTPDir+": junk") {
		t.Fatalf("stdout missing unrecognized-directory note:\n%s", stdout)
	}
}

func TestCLICheckCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, want := range []string{"Prerequisites", "bannertool", "3dstool", "makerom", "EasyRPG ELF", "Scratch Leftovers", "clean"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "[ERROR]") {
		t.Fatalf("unexpected failed check:\n%s", stdout)
	}
}

func TestCLICheckCommandReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("PATH", t.TempDir())

	stdout, _, err := runCLI(t, env.configPath, "check")
	if err == nil {
		t.Fatal("expected failed checks to surface as an error")
	}
	if !strings.Contains(err.Error(), "3 prerequisite checks failed") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "[ERROR]") {
		t.Fatalf("stdout missing failed status lines:\n%s", stdout)
	}
}

func TestCLIConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "fresh", "config.toml")

	stdout, _, err := runCLI(t, env.configPath, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(stdout, "Wrote sample configuration to "+target) {
		t.Fatalf("stdout missing confirmation:\n%s", stdout)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, _, err := runCLI(t, env.configPath, "config", "init", "--path", target); err == nil {
		t.Fatal("expected overwrite refusal")
	}
}

func TestCLIConfigValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(stdout, "Config path: "+env.configPath) {
		t.Fatalf("stdout missing config path:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Configuration valid") {
		t.Fatalf("stdout missing validation result:\n%s", stdout)
	}
}
