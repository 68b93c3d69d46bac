package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates user word sources and blacklists given as relative
// paths in config files or flags.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
	workDir       string
}

// NewPathResolver creates a resolver that searches, in order, the working
// directory, configDir and the executable's directory.
func NewPathResolver(configDir string) *PathResolver {
	pr := &PathResolver{configDir: configDir}
	if execDir, err := GetExecutableDir(); err == nil {
		if resolved, err := filepath.EvalSymlinks(execDir); err == nil {
			execDir = resolved
		}
		pr.executableDir = execDir
	}
	if home, err := os.UserHomeDir(); err == nil {
		pr.homeDir = home
	} else {
		log.Warnf("Could not determine home directory: %v", err)
	}
	if cwd, err := os.Getwd(); err == nil {
		pr.workDir = cwd
	}
	log.Debugf("PathResolver initialized: cwd=%s, configDir=%s, execDir=%s",
		pr.workDir, pr.configDir, pr.executableDir)
	return pr
}

// candidates lists where a relative path may live, in search order.
func (pr *PathResolver) candidates(p string) []string {
	if filepath.IsAbs(p) {
		return []string{p}
	}
	var out []string
	if len(p) > 1 && p[0] == '~' && (p[1] == '/' || p[1] == filepath.Separator) && pr.homeDir != "" {
		return []string{filepath.Join(pr.homeDir, p[2:])}
	}
	for _, dir := range []string{pr.workDir, pr.configDir, pr.executableDir} {
		if dir != "" {
			out = append(out, filepath.Join(dir, p))
		}
	}
	return out
}

// Resolve returns the first existing location of p. When none exists p is
// returned unchanged so callers can fall back to builtin names.
func (pr *PathResolver) Resolve(p string) (string, bool) {
	if p == "" {
		return p, false
	}
	for _, candidate := range pr.candidates(p) {
		if FileExists(candidate) {
			log.Debugf("Resolved %s to %s", p, candidate)
			return candidate, true
		}
		log.Debugf("Path candidate not found: %s", candidate)
	}
	return p, false
}

// GetRuntimeInfo returns debug information about the current runtime environment
func (pr *PathResolver) GetRuntimeInfo() map[string]string {
	return map[string]string{
		"os":             runtime.GOOS,
		"arch":           runtime.GOARCH,
		"go_version":     runtime.Version(),
		"working_dir":    pr.workDir,
		"config_dir":     pr.configDir,
		"executable_dir": pr.executableDir,
		"home_dir":       pr.homeDir,
	}
}
