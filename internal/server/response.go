package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/eduardo/initializr/internal/domain"
)

// BaseResponse is the envelope of every JSON response.
type BaseResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

func success(message string, data any) BaseResponse {
	return BaseResponse{Success: true, Message: message, Timestamp: time.Now().UTC(), Data: data}
}

func failure(message string) BaseResponse {
	return BaseResponse{Success: false, Message: message, Timestamp: time.Now().UTC()}
}

// GenerateProjectRequest is the body of POST /spring-boot/generator.
type GenerateProjectRequest struct {
	ApplicationName     string `json:"applicationName" binding:"required"`
	FrameworkType       string `json:"frameworkType" binding:"required"`
	DatabaseType        string `json:"databaseType" binding:"required"`
	JwtAuthEnabled      bool   `json:"jwtAuthEnabled"`
	BaseEntityEnabled   bool   `json:"baseEntityEnabled"`
	BaseResponseEnabled bool   `json:"baseResponseEnabled"`
	PackageName         string `json:"packageName"`
	GroupID             string `json:"groupId"`
	ArtifactID          string `json:"artifactId"`
	Version             string `json:"version"`
	JavaVersion         string `json:"javaVersion"`
}

// Config converts the request into a Configuration Vector.
func (r GenerateProjectRequest) Config() (domain.Config, error) {
	db, err := domain.ParseDatabaseKind(r.DatabaseType)
	if err != nil {
		return domain.Config{}, err
	}
	return domain.Config{
		ApplicationName:     r.ApplicationName,
		Framework:           domain.ParseFrameworkKind(r.FrameworkType),
		Database:            db,
		JwtAuthEnabled:      r.JwtAuthEnabled,
		BaseEntityEnabled:   r.BaseEntityEnabled,
		BaseResponseEnabled: r.BaseResponseEnabled,
		PackageName:         r.PackageName,
		GroupID:             r.GroupID,
		ArtifactID:          r.ArtifactID,
		Version:             r.Version,
		JavaVersion:         r.JavaVersion,
	}, nil
}

// GenerateProjectResponse is the projection of a Generation Record returned
// to clients.
type GenerateProjectResponse struct {
	ID                  string               `json:"id"`
	ProjectName         string               `json:"projectName"`
	FrameworkType       domain.FrameworkKind `json:"frameworkType"`
	DatabaseType        domain.DatabaseKind  `json:"databaseType"`
	JwtAuthEnabled      bool                 `json:"jwtAuthEnabled"`
	BaseEntityEnabled   bool                 `json:"baseEntityEnabled"`
	BaseResponseEnabled bool                 `json:"baseResponseEnabled"`
	PackageName         string               `json:"packageName"`
	ProjectPath         string               `json:"projectPath"`
	FileSizeBytes       int64                `json:"fileSizeBytes"`
	DownloadCount       int64                `json:"downloadCount"`
	GroupID             string               `json:"groupId"`
	ArtifactID          string               `json:"artifactId"`
	Version             string               `json:"version"`
	CreatedAt           time.Time            `json:"createdAt"`
}

func toResponse(r *domain.Record) GenerateProjectResponse {
	return GenerateProjectResponse{
		ID:                  r.ID,
		ProjectName:         r.ApplicationName,
		FrameworkType:       r.Framework,
		DatabaseType:        r.Database,
		JwtAuthEnabled:      r.JwtAuthEnabled,
		BaseEntityEnabled:   r.BaseEntityEnabled,
		BaseResponseEnabled: r.BaseResponseEnabled,
		PackageName:         r.PackageName,
		ProjectPath:         r.ProjectPath,
		FileSizeBytes:       r.FileSizeBytes,
		DownloadCount:       r.DownloadCount,
		GroupID:             r.GroupID,
		ArtifactID:          r.ArtifactID,
		Version:             r.Version,
		CreatedAt:           r.CreatedAt,
	}
}

// statusFor maps an error category to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides the details of unexpected failures from clients.
func messageFor(err error) string {
	var de *domain.Error
	if errors.As(err, &de) && statusFor(err) != http.StatusInternalServerError {
		return de.Message
	}
	if statusFor(err) == http.StatusInternalServerError {
		return "Internal Server Error"
	}
	return err.Error()
}
