package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/termfold/ttyprompt/pkg/console"
	"github.com/termfold/ttyprompt/pkg/prompt"
)

// formField is one entry of the YAML form definition:
//
//	- name: username
//	  label: "Username: "
//	- name: password
//	  label: "Password: "
//	  sensitive: true
type formField struct {
	Name      string `yaml:"name"`
	Label     string `yaml:"label,omitempty"`
	Sensitive bool   `yaml:"sensitive,omitempty"`
}

func newFormCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form <fields.yaml>",
		Short: "Prompt for each field in a YAML definition and print the answers as YAML",
		RunE:  form,
		Args:  cobra.ExactArgs(1),
	}
	return cmd
}

func form(cmd *cobra.Command, args []string) error {
	fields, err := loadFormFields(args[0])
	if err != nil {
		return err
	}

	term, err := prompt.Open()
	if err != nil {
		return err
	}
	defer term.Close()
	console.Debugf("prompting on %s", term.Source())

	// MapSlice keeps the answers in field order.
	answers := yaml.MapSlice{}
	for _, field := range fields {
		read := term.Prompt
		if field.Sensitive {
			read = term.PromptSensitive
		}
		value, err := read(field.labelOrDefault())
		if err != nil {
			return fmt.Errorf("reading field %q: %w", field.Name, err)
		}
		answers = append(answers, yaml.MapItem{Key: field.Name, Value: value})
	}

	out, err := yaml.Marshal(answers)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func loadFormFields(path string) ([]formField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading form definition: %w", err)
	}
	var fields []formField
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parsing form definition %s: %w", path, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("form definition %s has no fields", path)
	}
	for i, field := range fields {
		if field.Name == "" {
			return nil, fmt.Errorf("form definition %s: field %d has no name", path, i+1)
		}
	}
	return fields, nil
}

func (f formField) labelOrDefault() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name + ": "
}
