package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rflorenc/windmill-client/pkg/models"
)

// runFlags are shared by `scripts run` and `flows run`.
type runFlags struct {
	args     []string
	argsJSON string
	tag      string
	delay    int64
	wait     bool
	timeout  time.Duration
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.args, "arg", "a", nil, "Argument as key=value; the value is parsed as JSON when it can be")
	cmd.Flags().StringVar(&f.argsJSON, "args-json", "", "Arguments as a JSON object, merged under --arg")
	cmd.Flags().StringVar(&f.tag, "tag", "", "Worker tag override")
	cmd.Flags().Int64Var(&f.delay, "delay", 0, "Schedule the job this many seconds from now")
	cmd.Flags().BoolVar(&f.wait, "wait", false, "Wait for the job and print its result")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "With --wait, cancel the job after this long")
}

// parseArgs merges a JSON object with key=value pairs.
func parseArgs(pairs []string, raw string) (models.ScriptArgs, error) {
	args := models.ScriptArgs{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return nil, fmt.Errorf("parsing --args-json: %w", err)
		}
	}
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("argument %q: want key=value", kv)
		}
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			parsed = v
		}
		args[k] = parsed
	}
	return args, nil
}

// readYAML decodes a YAML file into v by way of JSON, so v's json tags and
// custom unmarshalers apply.
func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
