package prompt

import (
	"context"
	"fmt"

	"github.com/radhagarine/docgenius/pkg/schema"
)

// Fill walks a document schema section by section and collects a raw
// parameter mapping from the driver. Defaults pre-fill prompts; blank
// answers to optional fields are omitted from the result so validation sees
// them as absent.
func Fill(ctx context.Context, driver Driver, s schema.Schema) (map[string]any, error) {
	raw := make(map[string]any)
	for _, section := range s.Sections {
		if err := driver.Info(ctx, fmt.Sprintf("-- %s --", section.Title)); err != nil {
			return nil, err
		}
		for _, field := range section.Fields {
			value, err := ask(ctx, driver, field)
			if err != nil {
				return nil, err
			}
			if value == "" && !field.Required {
				continue
			}
			raw[field.ID] = value
		}
	}
	return raw, nil
}

func ask(ctx context.Context, driver Driver, field schema.Field) (string, error) {
	message := field.Label
	if field.Required {
		message += " (required)"
	}
	defaultValue := ""
	if field.Default != nil {
		defaultValue = fmt.Sprint(field.Default)
	}

	switch field.Kind {
	case schema.KindSelect:
		return driver.Select(ctx, SelectConfig{
			Message: message,
			Options: field.Options,
			Default: defaultValue,
			Help:    field.Help,
		})
	case schema.KindLongText:
		return driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: defaultValue,
			Help:    field.Help,
		})
	default:
		return driver.Input(ctx, InputConfig{
			Message: message,
			Default: defaultValue,
			Help:    field.Help,
		})
	}
}
