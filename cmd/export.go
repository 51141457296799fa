package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as JSON, YAML or TOML",
	Long: `Write a snapshot of all tasks to stdout or a file.

This is an interop/backup convenience; the task file itself always stays
JSON.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json, yaml or toml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}

// exportTask flattens a task for marshalling: the date becomes its canonical
// DD-MM-YYYY string so all three encoders agree on the representation.
type exportTask struct {
	ID   int    `json:"id" yaml:"id" toml:"id"`
	Text string `json:"text" yaml:"text" toml:"text"`
	Date string `json:"date,omitempty" yaml:"date,omitempty" toml:"date,omitempty"`
	Done bool   `json:"done" yaml:"done" toml:"done"`
}

type exportList struct {
	Tasks []exportTask `json:"tasks" yaml:"tasks" toml:"tasks"`
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := getStore()
	if err != nil {
		return err
	}

	list := exportList{Tasks: make([]exportTask, 0, len(s.Tasks()))}
	for _, task := range s.Tasks() {
		e := exportTask{ID: task.ID, Text: task.Text, Done: task.Done}
		if task.Date != nil {
			e.Date = task.Date.String()
		}
		list.Tasks = append(list.Tasks, e)
	}

	var data []byte
	switch strings.ToLower(exportFormat) {
	case "json":
		data, err = json.MarshalIndent(list, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(list)
	case "toml":
		buf := new(bytes.Buffer)
		if encodeErr := toml.NewEncoder(buf).Encode(list); encodeErr != nil {
			err = fmt.Errorf("failed to marshal TOML: %w", encodeErr)
		} else {
			data = buf.Bytes()
		}
	default:
		return fmt.Errorf("unsupported format %q: use json, yaml or toml", exportFormat)
	}
	if err != nil {
		return err
	}

	if exportOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export to %s: %w", exportOutput, err)
	}
	fmt.Printf("Exported %d task(s) to %s\n", len(list.Tasks), exportOutput)
	return nil
}
