package runtime

import (
	"errors"
	"testing"
)

func TestEnvironmentAssignMutatesNearestBinding(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("x", NewInt(1))
	inner := global.Extend().Extend()

	inner.Assign("x", NewInt(2))
	if _, ok := inner.Snapshot()["x"]; ok {
		t.Fatalf("assign leaked a local binding into the inner scope")
	}
	got, err := global.Get("x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if iv := got.(IntegerValue); iv.Val.Int64() != 2 {
		t.Fatalf("expected outer binding to become 2, got %s", iv.Val)
	}
}

func TestEnvironmentAssignCreatesInCurrentScope(t *testing.T) {
	global := NewEnvironment(nil)
	inner := global.Extend()

	inner.Assign("y", BoolValue{Val: true})
	if global.Has("y") {
		t.Fatalf("new binding leaked into the parent scope")
	}
	if _, err := inner.Get("y"); err != nil {
		t.Fatalf("expected y in inner scope: %v", err)
	}
}

func TestEnvironmentDefineShadows(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("x", NewInt(1))
	inner := global.Extend()
	inner.Define("x", NewInt(5))

	outer, _ := global.Get("x")
	if outer.(IntegerValue).Val.Int64() != 1 {
		t.Fatalf("define in child scope must not mutate parent")
	}
}

func TestEnvironmentGetMissingIsNameError(t *testing.T) {
	env := NewEnvironment(nil).Extend()
	_, err := env.Get("missing")
	var nameErr NameError
	if !errors.As(err, &nameErr) {
		t.Fatalf("expected NameError, got %T", err)
	}
	if nameErr.Name != "missing" {
		t.Fatalf("unexpected name %q", nameErr.Name)
	}
}

func TestEnvironmentKeysSorted(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("b", NilValue{})
	env.Define("a", NilValue{})
	keys := env.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys %v", keys)
	}
}
