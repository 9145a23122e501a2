package generator

import (
	"fmt"

	"github.com/eduardo/initializr/internal/domain"
)

// FileTemplate is one file an emitter renders. Path is itself a template so
// it can follow the package path.
type FileTemplate struct {
	Path string
	Body string
}

// Emitter produces the files of one feature. Emitters share no state: each
// decides from the Config alone whether it runs and what it writes.
type Emitter struct {
	Name    string
	Enabled func(domain.Config) bool
	Files   []FileTemplate
}

// templateData is what every template sees.
type templateData struct {
	Config    domain.Config
	Package   string
	MainClass string
	Facts     domain.DatabaseFacts
	Database  databaseFragment
}

func always(domain.Config) bool { return true }

const javaDir = sourceRoot + "/{{.Config.PackagePath}}"

// Emitters returns the registered emitters in emission order: mandatory files
// first, then the optional features, then the samples.
func Emitters() []Emitter {
	return []Emitter{
		{
			Name:    "build-manifest",
			Enabled: always,
			Files:   []FileTemplate{{Path: "pom.xml", Body: PomTemplate}},
		},
		{
			Name:    "runtime-configuration",
			Enabled: always,
			Files:   []FileTemplate{{Path: resourcesRoot + "/application.properties", Body: ApplicationPropertiesTemplate}},
		},
		{
			Name:    "entry-point",
			Enabled: always,
			Files:   []FileTemplate{{Path: javaDir + "/{{.MainClass}}.java", Body: MainClassTemplate}},
		},
		{
			Name:    "base-entity",
			Enabled: func(c domain.Config) bool { return c.BaseEntityEnabled },
			Files: []FileTemplate{
				{Path: javaDir + "/models/entities/baseentity/BaseEntity.java", Body: BaseEntityTemplate},
			},
		},
		{
			Name:    "base-response",
			Enabled: func(c domain.Config) bool { return c.BaseResponseEnabled },
			Files: []FileTemplate{
				{Path: javaDir + "/models/dto/response/baseresponse/SuccessResponse.java", Body: SuccessResponseTemplate},
				{Path: javaDir + "/models/dto/response/baseresponse/ErrorResponse.java", Body: ErrorResponseTemplate},
			},
		},
		{
			Name:    "jwt-auth",
			Enabled: func(c domain.Config) bool { return c.JwtAuthEnabled },
			Files:   []FileTemplate{{Path: javaDir + "/security/JwtUtil.java", Body: JwtUtilTemplate}},
		},
		{
			Name:    "sample-controller",
			Enabled: always,
			Files:   []FileTemplate{{Path: javaDir + "/controller/SampleController.java", Body: SampleControllerTemplate}},
		},
		{
			Name:    "sample-service",
			Enabled: always,
			Files: []FileTemplate{
				{Path: javaDir + "/services/interfaces/SampleService.java", Body: SampleServiceTemplate},
				{Path: javaDir + "/services/implementations/SampleServiceImpl.java", Body: SampleServiceImplTemplate},
			},
		},
		{
			Name:    "sample-entity",
			Enabled: always,
			Files:   []FileTemplate{{Path: javaDir + "/models/entities/SampleEntity.java", Body: SampleEntityTemplate}},
		},
		{
			Name:    "enums",
			Enabled: always,
			Files:   []FileTemplate{{Path: javaDir + "/models/enums/Status.java", Body: StatusEnumTemplate}},
		},
		{
			Name:    "web-configuration",
			Enabled: always,
			Files:   []FileTemplate{{Path: javaDir + "/configuration/WebConfig.java", Body: WebConfigTemplate}},
		},
	}
}

// Emit renders the emitter's files for cfg, which must already carry its
// defaults. A disabled emitter returns nil. Emit performs no I/O.
func (e Emitter) Emit(cfg domain.Config, tmpl domain.TemplatePort) ([]domain.GeneratedFile, error) {
	if !e.Enabled(cfg) {
		return nil, nil
	}

	data, err := newTemplateData(cfg)
	if err != nil {
		return nil, err
	}

	files := make([]domain.GeneratedFile, 0, len(e.Files))
	for i, f := range e.Files {
		name := fmt.Sprintf("%s-%d", e.Name, i)
		p, err := tmpl.Render(name+"-path", f.Path, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render path for %s: %w", e.Name, err)
		}
		body, err := tmpl.Render(name, f.Body, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", p, err)
		}
		files = append(files, domain.GeneratedFile{Path: string(p), Content: body})
	}
	return files, nil
}

func newTemplateData(cfg domain.Config) (templateData, error) {
	frag, facts, err := fragmentFor(cfg.Database)
	if err != nil {
		return templateData{}, err
	}
	return templateData{
		Config:    cfg,
		Package:   cfg.PackageName,
		MainClass: cfg.MainClassName(),
		Facts:     facts,
		Database:  frag,
	}, nil
}
