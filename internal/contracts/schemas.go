package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/numanharith/propertyhub-frontend/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Имена схем, которые используются адаптерами и use cases.
const (
	LeadStatusChangedEvent = "LeadStatusChangedEvent/1.0.0"
	LeadSubmittedEvent     = "LeadSubmittedEvent/1.0.0"
	PropertyListingPayload = "PropertyListingPayload/1.0.0"
	FsboListingPayload     = "FsboListingPayload/1.0.0"
)

var schemaRoots = map[string]string{
	"events":   "Event",
	"payloads": "Payload",
}

// Validator хранит скомпилированные схемы из SchemasFS.
type Validator struct {
	compiled map[string]*jsonschema.Schema
}

// NewValidator компилирует все встроенные схемы.
func NewValidator() (*Validator, error) {
	return newValidator(schemas.SchemasFS)
}

func newValidator(fsys fs.FS) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// --- Шаг 1: регистрируем все файлы как ресурсы, чтобы работали $ref между ними ---
	var paths []string
	for root := range schemaRoots {
		err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil
			}
			file, err := fsys.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				return fmt.Errorf("failed to add schema resource %s: %w", path, err)
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking schema resources: %w", err)
		}
	}

	// --- Шаг 2: компилируем и регистрируем под ключом ---
	v := &Validator{compiled: make(map[string]*jsonschema.Schema, len(paths))}
	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		key := generateKeyFromPath(path)
		if key == "" {
			continue
		}
		v.compiled[key] = schema
	}

	return v, nil
}

// generateKeyFromPath преобразует путь вида "events/lead-status-changed/v1.json"
// в ключ вида "LeadStatusChangedEvent/1.0.0".
func generateKeyFromPath(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, ".json"), "/")
	if len(parts) != 3 {
		return ""
	}
	suffix, ok := schemaRoots[parts[0]]
	if !ok {
		return ""
	}

	caser := cases.Title(language.English)

	var nameBuilder strings.Builder
	for _, p := range strings.Split(parts[1], "-") {
		nameBuilder.WriteString(caser.String(p))
	}
	nameBuilder.WriteString(suffix)

	version := strings.Replace(parts[2], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", nameBuilder.String(), version)
}

// Has сообщает, зарегистрирована ли схема.
func (v *Validator) Has(name string) bool {
	_, ok := v.compiled[name]
	return ok
}

// ValidateJSON проверяет уже сериализованное тело.
func (v *Validator) ValidateJSON(name string, body []byte) error {
	schema, ok := v.compiled[name]
	if !ok {
		return fmt.Errorf("schema '%s' not found", name)
	}

	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// Validate сериализует payload и проверяет его по схеме.
func (v *Validator) Validate(name string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for schema '%s': %w", name, err)
	}
	return v.ValidateJSON(name, body)
}
