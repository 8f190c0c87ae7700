package profile

import (
	"testing"

	"mcdoc/internal/assign"
	"mcdoc/internal/ast"
	"mcdoc/internal/types"
)

func TestByNameDispatchesKnownProfiles(t *testing.T) {
	if p := ByName("nbt"); p.Name != "nbt" {
		t.Fatalf("expected the nbt profile, got %q", p.Name)
	}
	if p := ByName("json"); p.Name != "json" {
		t.Fatalf("expected the json profile, got %q", p.Name)
	}
}

func TestByNameFallsBackToDefault(t *testing.T) {
	for _, name := range []string{"", "unknown-profile"} {
		if p := ByName(name); p.Name != "default" {
			t.Fatalf("expected ByName(%q) to fall back to the default profile, got %q", name, p.Name)
		}
	}
}

func TestNBTFoldsBooleanIntoByteZeroOrOne(t *testing.T) {
	in := types.NewInterner()
	p := NBT()

	b := in.NewBoolean()
	byteZeroOne := in.NewNumeric(ast.KindByte, &ast.NumRange{HasLo: true, Lo: ast.Int(0), HasHi: true, Hi: ast.Int(1)})
	byteWide := in.NewNumeric(ast.KindByte, nil)
	byteOther := in.NewNumeric(ast.KindByte, &ast.NumRange{HasLo: true, Lo: ast.Int(2), HasHi: true, Hi: ast.Int(5)})

	if !assign.Assignable(in, p, b, byteZeroOne) {
		t.Fatalf("expected boolean assignable to byte@0..1 under the nbt profile")
	}
	if !assign.Assignable(in, p, byteZeroOne, b) {
		t.Fatalf("expected byte@0..1 assignable to boolean under the nbt profile")
	}
	if !assign.Assignable(in, p, b, byteWide) {
		t.Fatalf("expected boolean assignable to an unranged byte under the nbt profile")
	}
	if assign.Assignable(in, p, b, byteOther) {
		t.Fatalf("expected boolean NOT assignable to byte@0..5 under the nbt profile")
	}
}

func TestNBTOverrideDoesNotApplyUnderDefaultProfile(t *testing.T) {
	in := types.NewInterner()
	b := in.NewBoolean()
	byteZeroOne := in.NewNumeric(ast.KindByte, &ast.NumRange{HasLo: true, Lo: ast.Int(0), HasHi: true, Hi: ast.Int(1)})

	if assign.Assignable(in, assign.Default(), b, byteZeroOne) {
		t.Fatalf("expected boolean/byte folding to be nbt-specific, not part of the default profile")
	}
}

func TestJSONTreatsCompatibleNumericKindsAsAssignable(t *testing.T) {
	in := types.NewInterner()
	p := JSON()

	i := in.NewNumeric(ast.KindInt, &ast.NumRange{HasLo: true, Lo: ast.Int(0), HasHi: true, Hi: ast.Int(10)})
	d := in.NewNumeric(ast.KindDouble, nil)

	if !assign.Assignable(in, p, i, d) {
		t.Fatalf("expected a ranged int assignable to an unranged double under the json profile")
	}
	if assign.Assignable(in, p, d, i) {
		t.Fatalf("expected an unranged double NOT assignable to a narrower ranged int under the json profile")
	}
}

func TestJSONOverrideDoesNotApplyUnderDefaultProfile(t *testing.T) {
	in := types.NewInterner()
	i := in.NewNumeric(ast.KindInt, nil)
	d := in.NewNumeric(ast.KindDouble, nil)

	if assign.Assignable(in, assign.Default(), i, d) {
		t.Fatalf("expected cross-numeric-kind assignability to be json-specific, not part of the default profile")
	}
}
