package interpreter

import (
	"math"
	"strings"
	"testing"

	"ruspy/interpreter-go/pkg/runtime"
)

func TestRegistrySeedsConstants(t *testing.T) {
	env := newGlobalEnvironment()
	answer, err := env.Get("answer")
	if err != nil {
		t.Fatalf("answer missing: %v", err)
	}
	expectInt(t, answer, 42)

	for name, want := range map[string]runtime.Value{
		"true":  runtime.BoolValue{Val: true},
		"false": runtime.BoolValue{Val: false},
		"null":  runtime.NilValue{},
	} {
		got, err := env.Get(name)
		if err != nil {
			t.Fatalf("%s missing: %v", name, err)
		}
		if !valuesEqual(got, want) {
			t.Fatalf("%s: expected %s, got %s", name, reprValue(want), reprValue(got))
		}
	}
	if _, err := env.Get("println"); err != nil {
		t.Fatalf("println missing: %v", err)
	}
}

func TestRegistryIsNotSharedBetweenEnvironments(t *testing.T) {
	first := newGlobalEnvironment()
	first.Assign("answer", runtime.NewInt(0))
	second := newGlobalEnvironment()
	answer, _ := second.Get("answer")
	expectInt(t, answer, 42)
}

func TestBuiltinNamesSorted(t *testing.T) {
	names := BuiltinNames()
	if len(names) != len(builtinRegistry) {
		t.Fatalf("expected %d names, got %d", len(builtinRegistry), len(names))
	}
	for idx := 1; idx < len(names); idx++ {
		if names[idx-1] >= names[idx] {
			t.Fatalf("names not sorted at %d: %v", idx, names)
		}
	}
}

func TestPrintlnJoinsWithSpaces(t *testing.T) {
	interp, stdout, _ := newTestInterpreter()
	if _, err := interp.EvaluateExpression(`println("a", 1, 2.0); print(); println([true, "b"])`); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got := stdout.String(); got != "a 1 2.0\n\n[true, \"b\"]\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2, "2.0"},
		{0.1, "0.1"},
		{-0.5, "-0.5"},
		{1234567, "1234567.0"},
		{1e20, "1e+20"},
		{1.5e-7, "1.5e-07"},
		{math.Inf(1), "inf"},
		{math.NaN(), "nan"},
	}
	for _, tc := range cases {
		if got := formatFloat(tc.in); got != tc.want {
			t.Fatalf("formatFloat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNativeArityBounds(t *testing.T) {
	interp, _, _ := newTestInterpreter()
	for _, src := range []string{"range()", "range(1, 2, 3, 4)", "log()", "min()"} {
		if _, err := interp.EvaluateExpression(src); err == nil {
			t.Fatalf("%s: expected arity error", src)
		}
	}
}

func TestIntRejectsMisplacedSeparators(t *testing.T) {
	interp, _, _ := newTestInterpreter()
	for _, src := range []string{`int("_1")`, `int("1__")`, `int("-_5")`, `int("1_a")`} {
		_, err := interp.EvaluateExpression(src)
		if err == nil || !strings.Contains(err.Error(), "invalid literal for int()") {
			t.Fatalf("%s: expected invalid literal error, got %v", src, err)
		}
	}
	val, err := interp.EvaluateExpression(`int(" -1__000 ")`)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	expectInt(t, val, -1000)
}
