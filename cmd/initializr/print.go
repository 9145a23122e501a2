package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/eduardo/initializr/internal/domain"
	"github.com/eduardo/initializr/internal/output"
)

var (
	labelColor   = color.New(color.FgHiBlack)
	nameColor    = color.New(color.FgHiGreen, color.Bold)
	enabledColor = color.New(color.FgGreen)
	pathColor    = color.New(color.FgCyan)
)

func printGenerated(w io.Writer, r *domain.Record) {
	fmt.Fprintf(w, "%s %s\n", enabledColor.Sprint("✓"), "Project Successfully Generated")
	printRecord(w, r)
	fmt.Fprintln(w)
	fmt.Fprintln(w, labelColor.Sprint("Files:"))
	for _, f := range r.Files {
		fmt.Fprintf(w, "  %s\n", pathColor.Sprint(f))
	}
}

func printRecord(w io.Writer, r *domain.Record) {
	row := func(label, value string) {
		fmt.Fprintf(w, "  %s %s\n", labelColor.Sprintf("%-14s", label+":"), value)
	}

	fmt.Fprintf(w, "%s\n", nameColor.Sprint(r.ApplicationName))
	row("id", r.ID)
	row("framework", string(r.Framework))
	row("database", string(r.Database))
	row("package", r.PackageName)
	row("coordinates", fmt.Sprintf("%s:%s:%s", r.GroupID, r.ArtifactID, r.Version))
	row("java", r.JavaVersion)
	row("features", features(r))
	row("path", pathColor.Sprint(r.ProjectPath))
	row("size", formatBytes(r.FileSizeBytes))
	row("downloads", strconv.FormatInt(r.DownloadCount, 10))
	row("created", r.CreatedAt.Local().Format(time.RFC3339))
}

func features(r *domain.Record) string {
	var out []string
	if r.JwtAuthEnabled {
		out = append(out, "jwt")
	}
	if r.BaseEntityEnabled {
		out = append(out, "base-entity")
	}
	if r.BaseResponseEnabled {
		out = append(out, "base-response")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ", ")
}

func recordTable(records []*domain.Record) *output.Table {
	t := output.NewTable("NAME", "DATABASE", "FEATURES", "SIZE", "DOWNLOADS", "CREATED")
	for _, r := range records {
		t.Row(
			r.ApplicationName,
			string(r.Database),
			features(r),
			formatBytes(r.FileSizeBytes),
			strconv.FormatInt(r.DownloadCount, 10),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	return t
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
