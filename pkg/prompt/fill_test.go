package prompt

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/radhagarine/docgenius/pkg/schema"
)

// scriptDriver answers prompts from canned responses keyed by message.
type scriptDriver struct {
	answers map[string]string
	infos   []string
}

func (d *scriptDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if answer, ok := d.answers[cfg.Message]; ok {
		return answer, nil
	}
	return cfg.Default, nil
}

func (d *scriptDriver) Select(_ context.Context, cfg SelectConfig) (string, error) {
	if answer, ok := d.answers[cfg.Message]; ok {
		return answer, nil
	}
	if cfg.Default != "" {
		return cfg.Default, nil
	}
	return cfg.Options[0], nil
}

func (d *scriptDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	if answer, ok := d.answers[cfg.Message]; ok {
		return answer, nil
	}
	return cfg.Default, nil
}

func (d *scriptDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func testSchema() schema.Schema {
	return schema.Schema{
		TypeID:      "memo",
		DisplayName: "Memo",
		Sections: []schema.Section{
			{
				Title: "Header",
				Fields: []schema.Field{
					{ID: "subject", Label: "Subject", Kind: schema.KindText, Required: true},
					{ID: "priority", Label: "Priority", Kind: schema.KindSelect, Options: []string{"Low", "High"}, Default: "Low"},
					{ID: "cc", Label: "CC", Kind: schema.KindText},
				},
			},
			{
				Title: "Body",
				Fields: []schema.Field{
					{ID: "body", Label: "Body", Kind: schema.KindLongText, Required: true},
				},
			},
		},
	}
}

func TestFill(t *testing.T) {
	driver := &scriptDriver{answers: map[string]string{
		"Subject (required)": "Quarterly review",
		"Body (required)":    "Numbers are up.",
	}}

	raw, err := Fill(context.Background(), driver, testSchema())
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	want := map[string]any{
		"subject":  "Quarterly review",
		"priority": "Low",
		"body":     "Numbers are up.",
	}
	if diff := cmp.Diff(want, raw); diff != "" {
		t.Errorf("raw params mismatch (-want +got):\n%s", diff)
	}

	wantInfos := []string{"-- Header --", "-- Body --"}
	if diff := cmp.Diff(wantInfos, driver.infos); diff != "" {
		t.Errorf("section banners mismatch (-want +got):\n%s", diff)
	}
}

func TestFillOmitsBlankOptionalFields(t *testing.T) {
	driver := &scriptDriver{answers: map[string]string{
		"Subject (required)": "Hello",
		"Body (required)":    "World",
		"CC":                 "",
	}}

	raw, err := Fill(context.Background(), driver, testSchema())
	if err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if _, ok := raw["cc"]; ok {
		t.Error("blank optional field should be omitted")
	}
}
