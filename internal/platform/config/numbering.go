package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"gopkg.in/yaml.v3"
)

type numberingFile struct {
	Templates map[string]string `yaml:"templates"`
}

// DefaultNumberingTemplates is used when no template file is present.
func DefaultNumberingTemplates() domain.NumberingTemplates {
	return domain.NumberingTemplates{
		domain.OutgoingBiasa: domain.DefaultNumberingTemplate,
		domain.OutgoingSK:    domain.DefaultNumberingTemplate,
		domain.OutgoingSPPD:  domain.DefaultNumberingTemplate,
	}
}

// LoadNumberingTemplates reads the per-kind numbering templates from a YAML file:
//
//	templates:
//	  Biasa: "NOMOR [NOMOR_URUT_PER_MASALAH]/..."
//	  SK: "..."
//
// A missing file yields the defaults.
func LoadNumberingTemplates(path string) (domain.NumberingTemplates, error) {
	if path == "" {
		return DefaultNumberingTemplates(), nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultNumberingTemplates(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read numbering templates %s: %w", path, err)
	}
	return ParseNumberingTemplates(raw)
}

// ParseNumberingTemplates parses the YAML template document.
func ParseNumberingTemplates(raw []byte) (domain.NumberingTemplates, error) {
	var file numberingFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse numbering templates: %w", err)
	}
	templates := domain.NumberingTemplates{}
	for kind, template := range file.Templates {
		k := domain.OutgoingKind(kind)
		if !k.IsValid() {
			return nil, fmt.Errorf("unknown outgoing kind %q in numbering templates", kind)
		}
		templates[k] = template
	}
	if _, ok := templates[domain.OutgoingBiasa]; !ok {
		templates[domain.OutgoingBiasa] = domain.DefaultNumberingTemplate
	}
	return templates, nil
}
