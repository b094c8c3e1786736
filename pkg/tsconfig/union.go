package tsconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Package-level validator for required fields of the structured shapes.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their document key rather than the Go field name.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// checkRequired turns the first failed "required" tag on v into a
// shape mismatch at path.
func checkRequired(path string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%s: %w", displayField(path), err)
	}
	return missingField(path, validationErrors[0].Field())
}

// ============================================================================
// References
// ============================================================================

// References is either a boolean flag or an ordered list of project
// references. The zero value is the flag false.
type References struct {
	enabled bool
	list    []Reference
	isList  bool
}

// ReferencesFromFlag returns the boolean form of References.
func ReferencesFromFlag(enabled bool) *References {
	return &References{enabled: enabled}
}

// ReferencesFromList returns the list form of References. An empty list is
// still the list form.
func ReferencesFromList(refs []Reference) *References {
	if refs == nil {
		refs = []Reference{}
	}
	return &References{list: refs, isList: true}
}

// Flag returns the boolean value and true if r is the flag form.
func (r *References) Flag() (bool, bool) {
	if r.isList {
		return false, false
	}
	return r.enabled, true
}

// List returns the references and true if r is the list form.
func (r *References) List() ([]Reference, bool) {
	if !r.isList {
		return nil, false
	}
	return r.list, true
}

// MarshalJSON writes the flag or the list, whichever r holds.
func (r References) MarshalJSON() ([]byte, error) {
	if r.isList {
		return json.Marshal(r.list)
	}
	return json.Marshal(r.enabled)
}

// decodeField resolves the shape of references: boolean first, then an
// array of reference objects.
func (r *References) decodeField(m *mapper, path string, v any) error {
	switch val := v.(type) {
	case bool:
		*r = References{enabled: val}
		return nil

	case []any:
		refs := make([]Reference, 0, len(val))
		for i, item := range val {
			itemPath := indexPath(path, i)
			obj, ok := item.(map[string]any)
			if !ok {
				return shapeMismatch(itemPath, []string{"object"}, jsonKind(item))
			}

			var ref Reference
			if err := m.decodeStruct(itemPath, obj, reflect.ValueOf(&ref).Elem()); err != nil {
				return err
			}
			if err := checkRequired(itemPath, &ref); err != nil {
				return err
			}
			refs = append(refs, ref)
		}
		*r = References{list: refs, isList: true}
		return nil

	default:
		return shapeMismatch(path, []string{"boolean", "array"}, jsonKind(v))
	}
}

// ============================================================================
// TypeAcquisition
// ============================================================================

// TypeAcquisition is either a boolean flag or a TypeAcquisitionOptions
// object. The zero value is the flag false.
type TypeAcquisition struct {
	enabled bool
	options *TypeAcquisitionOptions
}

// TypeAcquisitionFromFlag returns the boolean form of TypeAcquisition.
func TypeAcquisitionFromFlag(enabled bool) *TypeAcquisition {
	return &TypeAcquisition{enabled: enabled}
}

// TypeAcquisitionFromOptions returns the object form of TypeAcquisition.
func TypeAcquisitionFromOptions(opts TypeAcquisitionOptions) *TypeAcquisition {
	return &TypeAcquisition{options: &opts}
}

// Flag returns the boolean value and true if t is the flag form.
func (t *TypeAcquisition) Flag() (bool, bool) {
	if t.options != nil {
		return false, false
	}
	return t.enabled, true
}

// Options returns the object and true if t is the object form.
func (t *TypeAcquisition) Options() (TypeAcquisitionOptions, bool) {
	if t.options == nil {
		return TypeAcquisitionOptions{}, false
	}
	return *t.options, true
}

// Enabled reports whether acquisition is switched on, whichever form t holds.
func (t *TypeAcquisition) Enabled() bool {
	if t.options != nil {
		return t.options.Enable
	}
	return t.enabled
}

// MarshalJSON writes the flag or the object, whichever t holds.
func (t TypeAcquisition) MarshalJSON() ([]byte, error) {
	if t.options != nil {
		return json.Marshal(t.options)
	}
	return json.Marshal(t.enabled)
}

// typeAcquisitionObject is the decode-side view of TypeAcquisitionOptions,
// where enable must be present.
type typeAcquisitionObject struct {
	Enable                              *bool    `json:"enable" validate:"required"`
	Include                             []string `json:"include"`
	Exclude                             []string `json:"exclude"`
	DisableFilenameBasedTypeAcquisition *bool    `json:"disableFilenameBasedTypeAcquisition"`
}

// decodeField resolves the shape of typeAcquisition: boolean first, then an
// object with a required enable flag.
func (t *TypeAcquisition) decodeField(m *mapper, path string, v any) error {
	switch val := v.(type) {
	case bool:
		*t = TypeAcquisition{enabled: val}
		return nil

	case map[string]any:
		var obj typeAcquisitionObject
		if err := m.decodeStruct(path, val, reflect.ValueOf(&obj).Elem()); err != nil {
			return err
		}
		if err := checkRequired(path, &obj); err != nil {
			return err
		}
		*t = TypeAcquisition{options: &TypeAcquisitionOptions{
			Enable:                              *obj.Enable,
			Include:                             obj.Include,
			Exclude:                             obj.Exclude,
			DisableFilenameBasedTypeAcquisition: obj.DisableFilenameBasedTypeAcquisition,
		}}
		return nil

	default:
		return shapeMismatch(path, []string{"boolean", "object"}, jsonKind(v))
	}
}
