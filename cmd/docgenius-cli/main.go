package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/radhagarine/docgenius/pkg/doctypes"
	"github.com/radhagarine/docgenius/pkg/export"
	"github.com/radhagarine/docgenius/pkg/generator"
	"github.com/radhagarine/docgenius/pkg/prompt"
)

func main() {
	docType := flag.String("type", "", "document type to generate (see -list)")
	paramsPath := flag.String("params", "", "YAML or JSON file with parameter values")
	interactive := flag.Bool("interactive", false, "collect parameters with terminal prompts")
	format := flag.String("format", "html", "output format: html, pdf, or docx")
	output := flag.String("output", "", "output file (stdout if empty; required for pdf/docx)")
	list := flag.Bool("list", false, "list supported document types and exit")
	flag.Parse()

	ctx := context.Background()

	reg, err := doctypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}
	svc, err := generator.New(reg)
	if err != nil {
		log.Fatalf("Failed to build generator: %v", err)
	}

	if *list {
		for _, tpl := range svc.DocumentTypes() {
			fmt.Printf("%-18s %s\n", tpl.TypeID, tpl.DisplayName)
		}
		return
	}
	if *docType == "" {
		log.Fatal("Missing -type (use -list to see supported types)")
	}

	raw, err := collectParams(ctx, svc, *docType, *paramsPath, *interactive)
	if err != nil {
		log.Fatalf("Failed to collect parameters: %v", err)
	}

	doc, err := svc.GenerateDocument(ctx, *docType, raw, "")
	if err != nil {
		log.Fatalf("Failed to generate document: %v", err)
	}

	if err := writeOutput(doc.HTML, *format, *output); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	if *output != "" {
		fmt.Printf("Document written to %s (%d credits)\n", *output, doc.CreditsUsed)
	}
}

func collectParams(ctx context.Context, svc *generator.Service, docType, paramsPath string, interactive bool) (map[string]any, error) {
	if interactive {
		sch, err := svc.DocumentParameters(docType)
		if err != nil {
			return nil, err
		}
		return prompt.Fill(ctx, prompt.NewSurveyDriver(), sch)
	}
	if paramsPath == "" {
		return nil, fmt.Errorf("either -params or -interactive is required")
	}

	data, err := os.ReadFile(paramsPath)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]any)
	if strings.HasSuffix(paramsPath, ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", paramsPath, err)
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", paramsPath, err)
	}
	return raw, nil
}

func writeOutput(html, format, output string) error {
	switch format {
	case "html":
		if output == "" {
			fmt.Println(html)
			return nil
		}
		return os.WriteFile(output, []byte(html), 0o644)
	case "pdf", "docx":
		if output == "" {
			return fmt.Errorf("-output is required for %s", format)
		}
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		if format == "pdf" {
			return export.WritePDF(f, html)
		}
		return export.WriteDOCX(f, html)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
