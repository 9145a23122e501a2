package generator

import (
	"path"

	"github.com/eduardo/initializr/internal/domain"
)

const (
	sourceRoot    = "src/main/java"
	resourcesRoot = "src/main/resources"
	testRoot      = "src/test/java"
)

// packageDirs are created below the package root, in this order.
var packageDirs = []string{
	"configuration",
	"controller",
	"models",
	"models/entities",
	"models/entities/baseentity",
	"models/enums",
	"models/dto",
	"models/dto/request",
	"models/dto/response",
	"models/dto/response/baseresponse",
	"services",
	"services/interfaces",
	"services/implementations",
	"repository",
	"security",
}

// PlanDirectories returns every directory a project needs before any file is
// written. The result is deterministic for a given input.
func PlanDirectories(projectPath string, cfg domain.Config) []string {
	pkgRoot := path.Join(projectPath, sourceRoot, cfg.PackagePath())

	dirs := make([]string, 0, len(packageDirs)+4)
	dirs = append(dirs, projectPath, pkgRoot)
	for _, d := range packageDirs {
		dirs = append(dirs, path.Join(pkgRoot, d))
	}
	dirs = append(dirs,
		path.Join(projectPath, resourcesRoot),
		path.Join(projectPath, testRoot, cfg.PackagePath()),
	)
	return dirs
}
