package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awksedgreep/bindocsis/internal/obslog"
	"github.com/awksedgreep/bindocsis/pkg/docsis"
	"github.com/awksedgreep/bindocsis/pkg/enrich"
	"github.com/awksedgreep/bindocsis/pkg/registry"
	"github.com/awksedgreep/bindocsis/pkg/surface"
	"github.com/awksedgreep/bindocsis/pkg/tlvcodec"
)

var (
	convertOutput string
	convertFrom   string
	convertTo     string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input-file>",
	Short: "Convert between binary TLV, YAML, and JSON representations",
	Long: `Convert translates a configuration file between the binary TLV wire
format and its human-editable YAML or JSON surface, in either direction.
Formats are inferred from file extensions unless --from/--to are given
explicitly (one of: bin, yaml, json).`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (required)")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Input format: bin, yaml, or json (default: inferred from extension)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Output format: bin, yaml, or json (default: inferred from extension)")
	_ = convertCmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inPath := args[0]
	fromFmt := convertFrom
	if fromFmt == "" {
		fromFmt = formatFromExt(inPath)
	}
	toFmt := convertTo
	if toFmt == "" {
		toFmt = formatFromExt(convertOutput)
	}
	if fromFmt == "" || toFmt == "" {
		return fmt.Errorf("could not infer format from extension; pass --from/--to explicitly")
	}

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	reg := registry.New(registry.Options{
		IncludeMTA:    cfg.IncludeMTA,
		DocsisVersion: docsis.Version(cfg.DocsisVersion),
	})
	enrichOpts := enrich.Options{
		Registry:        reg,
		MaxNestingDepth: cfg.MaxNestingDepth,
		Strict:          cfg.Strict,
	}

	enriched, err := decodeToEnriched(raw, fromFmt, enrichOpts)
	if err != nil {
		return err
	}

	out, err := encodeFromEnriched(enriched, toFmt, cfg.DocsisVersion, enrichOpts)
	if err != nil {
		return err
	}

	obslog.Info("converted file", obslog.KeyFilePath, inPath, obslog.KeyFormat, fromFmt+"->"+toFmt)

	return writeOutput(convertOutput, out)
}

func decodeToEnriched(raw []byte, format string, opts enrich.Options) ([]*docsis.EnrichedTlv, error) {
	switch format {
	case "bin":
		tlvs, err := tlvcodec.Parse(raw, tlvcodec.ParseOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to parse TLV bytes: %w", err)
		}
		return enrich.Enrich(tlvs, opts)
	case "yaml":
		doc, err := surface.UnmarshalYAML(raw)
		if err != nil {
			return nil, err
		}
		return surface.ToEnriched(doc.Tlvs), nil
	case "json":
		doc, err := surface.UnmarshalJSON(raw)
		if err != nil {
			return nil, err
		}
		return surface.ToEnriched(doc.Tlvs), nil
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}

func encodeFromEnriched(enriched []*docsis.EnrichedTlv, format, docsisVersion string, opts enrich.Options) ([]byte, error) {
	switch format {
	case "bin":
		raws, err := enrich.UnEnrich(enriched, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to un-enrich TLV tree: %w", err)
		}
		out, err := tlvcodec.Serialize(raws, tlvcodec.SerializeOptions{Terminate: true})
		if err != nil {
			return nil, fmt.Errorf("failed to serialize TLV bytes: %w", err)
		}
		return out, nil
	case "yaml":
		doc := &surface.Document{DocsisVersion: docsisVersion, Tlvs: surface.FromEnriched(enriched)}
		return surface.MarshalYAML(doc)
	case "json":
		doc := &surface.Document{DocsisVersion: docsisVersion, Tlvs: surface.FromEnriched(enriched)}
		return surface.MarshalJSON(doc)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func formatFromExt(path string) string {
	switch {
	case strings.HasSuffix(path, ".bin") || strings.HasSuffix(path, ".cm"):
		return "bin"
	case strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"):
		return "yaml"
	case strings.HasSuffix(path, ".json"):
		return "json"
	default:
		return ""
	}
}
