package interpreter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type fixture struct {
	Name   string `yaml:"name"`
	Mode   string `yaml:"mode"`
	Source string `yaml:"source"`
	Value  string `yaml:"value"`
	Stdout string `yaml:"stdout"`
	Error  string `yaml:"error"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "fixtures.yml"))
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var fixtures []fixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatalf("no fixtures found")
	}
	return fixtures
}

func TestFixtures(t *testing.T) {
	for _, fx := range loadFixtures(t) {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			interp, stdout, _ := newTestInterpreter()
			var (
				got string
				err error
			)
			switch fx.Mode {
			case "", "expression":
				val, evalErr := interp.EvaluateExpression(fx.Source)
				err = evalErr
				if evalErr == nil {
					got = reprValue(val)
				}
			case "module":
				bindings, evalErr := interp.EvaluateModule(fx.Source)
				err = evalErr
				if evalErr == nil {
					if _, ok := bindings[fx.Value]; ok {
						got = fx.Value
					}
				}
			case "run":
				err = interp.RunModule(fx.Source)
			default:
				t.Fatalf("unknown fixture mode %q", fx.Mode)
			}

			if fx.Error != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got value %s", fx.Error, got)
				}
				if !strings.Contains(err.Error(), fx.Error) {
					t.Fatalf("expected error containing %q, got %q", fx.Error, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fx.Value != "" && got != fx.Value {
				t.Fatalf("expected %s, got %s", fx.Value, got)
			}
			if fx.Stdout != "" && stdout.String() != fx.Stdout {
				t.Fatalf("expected stdout %q, got %q", fx.Stdout, stdout.String())
			}
		})
	}
}
