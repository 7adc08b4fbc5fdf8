// Command export turns a backup snapshot into Markdown or PDF without
// running the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/export"
	"resume-builder/internal/model"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	in := flag.String("in", "", "backup JSON file to export")
	format := flag.String("format", "markdown", "output format: markdown or pdf")
	out := flag.String("out", "", "output path (default: derived from the resume name)")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read %s: %v", *in, err)
	}
	backup, err := repository.DecodeBackup(raw)
	if err != nil {
		log.Fatalf("parse %s: %v", *in, err)
	}

	data := model.DefaultResumeData()
	if backup.ResumeData != nil {
		data = *backup.ResumeData
	}
	settings := model.DefaultSettings()
	if backup.Settings != nil {
		settings = *backup.Settings
	}

	switch *format {
	case "markdown":
		path := *out
		if path == "" {
			path = export.MarkdownFilename(data.PersonalInfo.Name)
		}
		if err := os.WriteFile(path, []byte(export.ToMarkdown(data)), 0644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Println(path)
	case "pdf":
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		exporter := export.NewPDFExporter(infra.NewChromedpSurface())
		pdf, err := exporter.Export(ctx, data, settings)
		if err != nil {
			log.Fatalf("export pdf: %v", err)
		}
		path := *out
		if path == "" {
			path = export.PDFFilename(data.PersonalInfo.Name)
		}
		if err := os.WriteFile(path, pdf, 0644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Println(path)
	default:
		log.Fatalf("unknown format %q", *format)
	}
}
