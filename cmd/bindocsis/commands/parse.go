package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/awksedgreep/bindocsis/internal/obslog"
	"github.com/awksedgreep/bindocsis/pkg/docsis"
	"github.com/awksedgreep/bindocsis/pkg/enrich"
	"github.com/awksedgreep/bindocsis/pkg/registry"
	"github.com/awksedgreep/bindocsis/pkg/surface"
	"github.com/awksedgreep/bindocsis/pkg/tlvcodec"
)

var (
	parseOutput     string
	parseFormat     string
	parseIncludeMTA bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.bin>",
	Short: "Parse a binary TLV configuration file into YAML or JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Output file (default: stdout)")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "yaml", "Output format: yaml or json")
	parseCmd.Flags().BoolVar(&parseIncludeMTA, "include-mta", false, "Include the PacketCable MTA lookup table")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	tlvs, err := tlvcodec.Parse(raw, tlvcodec.ParseOptions{})
	if err != nil {
		return fmt.Errorf("failed to parse TLV bytes: %w", err)
	}

	reg := registry.New(registry.Options{
		IncludeMTA:    parseIncludeMTA || cfg.IncludeMTA,
		DocsisVersion: docsis.Version(cfg.DocsisVersion),
	})
	enriched, err := enrich.Enrich(tlvs, enrich.Options{
		Registry:        reg,
		MaxNestingDepth: cfg.MaxNestingDepth,
		Strict:          cfg.Strict,
	})
	if err != nil {
		return fmt.Errorf("failed to enrich TLV tree: %w", err)
	}

	doc := &surface.Document{
		DocsisVersion: cfg.DocsisVersion,
		Tlvs:          surface.FromEnriched(enriched),
		Metadata:      surface.BuildMetadata(enriched, time.Now()),
	}

	var out []byte
	switch strings.ToLower(parseFormat) {
	case "json":
		out, err = surface.MarshalJSON(doc)
	case "yaml", "":
		out, err = surface.MarshalYAML(doc)
	default:
		return fmt.Errorf("unsupported output format %q (want yaml or json)", parseFormat)
	}
	if err != nil {
		return err
	}

	obslog.Info("parsed file", obslog.KeyFilePath, args[0], obslog.KeyTlvCount, len(enriched))

	return writeOutput(parseOutput, out)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
